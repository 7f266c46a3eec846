package match

// DepthChange represents a change in the order book depth.
type DepthChange struct {
	Side     Side
	Price    int64
	SizeDiff int64
}

// CalculateDepthChange calculates the depth change implied by a book log.
// It returns a DepthChange struct indicating which side and price level should
// be updated. Note: for LogTypeMatch, the side returned is the maker's side
// (opposite of the log's side).
func CalculateDepthChange(log *BookLog) DepthChange {
	switch log.Type {
	case LogTypeOpen:
		return DepthChange{
			Side:     log.Side,
			Price:    log.Price,
			SizeDiff: log.Size,
		}
	case LogTypeMatch:
		// Match reduces liquidity from the maker side.
		// The log.Side is the taker's side, so we update the opposite side.
		return DepthChange{
			Side:     log.Side.Opposite(),
			Price:    log.Price,
			SizeDiff: -log.Size,
		}
	}

	return DepthChange{}
}
