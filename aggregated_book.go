package match

import (
	"sync/atomic"

	"github.com/igrmk/treemap/v2"
	"go.uber.org/zap"
)

// AggregatedBook maintains a simplified view of the order book, tracking only
// price levels and their aggregated sizes (depth). It is designed for
// downstream consumers that rebuild book state from the BookLog event stream
// instead of reading the ladders directly.
//
// It implements Publisher so it can be attached straight to an OrderBook;
// Replay processes events synchronously, as the Publish contract requires.
type AggregatedBook struct {
	seqID atomic.Uint64 // Last processed SequenceID for gap detection and deduplication
	ask   *treemap.TreeMap[int64, int64]
	bid   *treemap.TreeMap[int64, int64]
}

// AggregatedLevel is one price level of the aggregated view.
type AggregatedLevel struct {
	Price int64
	Size  int64
}

// NewAggregatedBook creates a new AggregatedBook instance with empty ask and bid sides.
func NewAggregatedBook() *AggregatedBook {
	return &AggregatedBook{
		ask: treemap.New[int64, int64](),
		bid: treemap.New[int64, int64](),
	}
}

// SequenceID returns the last processed sequence ID.
// Used for synchronization and gap detection during rebuild.
func (ab *AggregatedBook) SequenceID() uint64 {
	return ab.seqID.Load()
}

// Publish applies book logs in order, satisfying the Publisher interface.
// Sequence gaps are logged and the offending event is dropped.
func (ab *AggregatedBook) Publish(logs ...*BookLog) {
	for _, log := range logs {
		if err := ab.Replay(log); err != nil {
			logger.Warn("aggregated book replay failed",
				zap.Uint64("seq_id", log.SequenceID),
				zap.Error(err))
		}
	}
}

// Replay applies a single BookLog event to update the aggregated book state.
// Events at or below the current sequence ID are treated as duplicates and
// skipped; a jump past the next expected ID returns ErrSequenceGap.
func (ab *AggregatedBook) Replay(log *BookLog) error {
	last := ab.seqID.Load()
	if log.SequenceID <= last {
		return nil
	}
	if log.SequenceID != last+1 {
		return ErrSequenceGap
	}

	change := CalculateDepthChange(log)
	if change.SizeDiff != 0 {
		tree := ab.bid
		if change.Side == Sell {
			tree = ab.ask
		}

		size, _ := tree.Get(change.Price)
		size += change.SizeDiff
		if size <= 0 {
			tree.Del(change.Price)
		} else {
			tree.Set(change.Price, size)
		}
	}

	ab.seqID.Store(log.SequenceID)
	return nil
}

// Rebuild resets the aggregated book from a full book snapshot.
// This should be called before replaying events that follow the snapshot.
func (ab *AggregatedBook) Rebuild(snap *BookSnapshot) {
	ab.bid.Clear()
	ab.ask.Clear()

	for _, order := range snap.Bids {
		size, _ := ab.bid.Get(order.Price)
		ab.bid.Set(order.Price, size+order.Quantity)
	}
	for _, order := range snap.Asks {
		size, _ := ab.ask.Get(order.Price)
		ab.ask.Set(order.Price, size+order.Quantity)
	}

	ab.seqID.Store(snap.SeqID)
}

// Depth returns the aggregated size at a specific price level for the given side.
// Returns zero if the price level does not exist.
func (ab *AggregatedBook) Depth(side Side, price int64) int64 {
	tree := ab.bid
	if side == Sell {
		tree = ab.ask
	}

	size, _ := tree.Get(price)
	return size
}

// Levels returns the top levels of one side, best price first.
func (ab *AggregatedBook) Levels(side Side, limit int) []AggregatedLevel {
	result := make([]AggregatedLevel, 0, limit)

	if side == Buy {
		// Best bid is the highest price
		for it := ab.bid.Reverse(); it.Valid() && len(result) < limit; it.Next() {
			result = append(result, AggregatedLevel{Price: it.Key(), Size: it.Value()})
		}
		return result
	}

	for it := ab.ask.Iterator(); it.Valid() && len(result) < limit; it.Next() {
		result = append(result, AggregatedLevel{Price: it.Key(), Size: it.Value()})
	}
	return result
}
