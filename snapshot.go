package match

// BookStats contains statistics about the order book ladders.
type BookStats struct {
	AskDepthCount int64 `json:"ask_depth_count"`
	AskOrderCount int64 `json:"ask_order_count"`
	BidDepthCount int64 `json:"bid_depth_count"`
	BidOrderCount int64 `json:"bid_order_count"`
}

// BookSnapshot contains the full resting state of a single OrderBook.
// Bids and Asks are ordered best price first, FIFO within a level, so two
// snapshots of the same book compare equal field by field.
type BookSnapshot struct {
	Symbol       string  `json:"symbol"`
	SeqID        uint64  `json:"seq_id"`        // Current BookLog sequence ID
	TradeID      uint64  `json:"trade_id"`      // Current trade sequence ID
	LastSequence uint64  `json:"last_sequence"` // Last assigned arrival sequence
	Bids         []Order `json:"bids"`
	Asks         []Order `json:"asks"`
}
