package match

import (
	"time"
)

// Depth is a read-only snapshot of the top levels of both ladders.
type Depth struct {
	UpdateID uint64       `json:"update_id"`
	Asks     []*DepthItem `json:"asks"`
	Bids     []*DepthItem `json:"bids"`
}

// OrderBook holds the two price ladders for one instrument and matches
// incoming limit orders against them under strict price-time priority.
//
// The book is synchronous and single-threaded: PlaceOrder runs to completion
// without suspension and must never be called concurrently for the same
// instrument. Callers that need concurrent submission wrap the book
// behind a single-writer boundary (see SerialBook).
type OrderBook struct {
	symbol    string
	seq       *Sequencer
	seqID     uint64 // book log sequence, increases for every published event
	tradeID   uint64 // sequential trade ID, only incremented for Match events
	bidQueue  *queue
	askQueue  *queue
	publisher Publisher
}

// NewOrderBook creates a new order book instance.
// A nil publisher discards book log events.
func NewOrderBook(symbol string, seq *Sequencer, publisher Publisher) *OrderBook {
	if publisher == nil {
		publisher = NewDiscardPublisher()
	}

	return &OrderBook{
		symbol:    symbol,
		seq:       seq,
		bidQueue:  NewBuyerQueue(),
		askQueue:  NewSellerQueue(),
		publisher: publisher,
	}
}

// Symbol returns the instrument this book trades.
func (book *OrderBook) Symbol() string {
	return book.symbol
}

// PlaceOrder matches an incoming limit order against the opposite ladder,
// best price first, oldest order first within a level. Any unmatched
// remainder rests on the order's own ladder at its original limit price.
//
// The returned trades carry the maker's price; price improvement accrues to
// the taker. Orders with non-positive price or quantity are rejected before
// any state mutation: no trades, no arrival sequence consumed.
func (book *OrderBook) PlaceOrder(side Side, price int64, quantity int64, id uint64) ([]Trade, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	sequence := book.seq.NextArrival()

	var myQueue, targetQueue *queue
	if side == Buy {
		myQueue = book.bidQueue
		targetQueue = book.askQueue
	} else {
		myQueue = book.askQueue
		targetQueue = book.bidQueue
	}

	trades := make([]Trade, 0, 4)
	logs := make([]*BookLog, 0, 8)
	now := time.Now().UTC()

	remaining := quantity

	for remaining > 0 {
		// Peek first to check if matching is possible
		tOrd := targetQueue.peekHeadOrder()

		if tOrd == nil {
			// No liquidity left on the opposite side
			break
		}

		if side == Buy && price < tOrd.Price ||
			side == Sell && price > tOrd.Price {
			// Not marketable at this price
			break
		}

		// Price matches, now actually pop the order for matching
		tOrd = targetQueue.popHeadOrder()

		traded := min(remaining, tOrd.Quantity)

		trades = append(trades, Trade{
			Price:    tOrd.Price,
			Quantity: traded,
			MakerID:  tOrd.ID,
			TakerID:  id,
		})

		book.seqID++
		book.tradeID++
		log := acquireBookLog()
		log.SequenceID = book.seqID
		log.TradeID = book.tradeID
		log.Type = LogTypeMatch
		log.Symbol = book.symbol
		log.Side = side
		log.Price = tOrd.Price
		log.Size = traded
		log.OrderID = id
		log.MakerOrderID = tOrd.ID
		log.CreatedAt = now
		logs = append(logs, log)

		remaining -= traded
		tOrd.Quantity -= traded

		if tOrd.Quantity > 0 {
			// Partially filled maker keeps its place at the front of its
			// level; only possible once remaining hit zero.
			targetQueue.insertOrder(tOrd, true)
		}
	}

	if remaining > 0 {
		resting := &Order{
			ID:       id,
			Side:     side,
			Price:    price,
			Quantity: remaining,
			Sequence: sequence,
		}
		myQueue.insertOrder(resting, false)

		book.seqID++
		log := acquireBookLog()
		log.SequenceID = book.seqID
		log.Type = LogTypeOpen
		log.Symbol = book.symbol
		log.Side = side
		log.Price = price
		log.Size = remaining
		log.OrderID = id
		log.CreatedAt = now
		logs = append(logs, log)
	}

	if len(logs) > 0 {
		book.publisher.Publish(logs...)
		for _, log := range logs {
			releaseBookLog(log)
		}
	}

	return trades, nil
}

// BestBid returns the highest bid level as (price, aggregated size).
// ok is false when the bid ladder is empty.
func (book *OrderBook) BestBid() (price int64, size int64, ok bool) {
	price, ok = book.bidQueue.bestPrice()
	if !ok {
		return 0, 0, false
	}

	return price, book.bidQueue.sizeAt(price), true
}

// BestAsk returns the lowest ask level as (price, aggregated size).
// ok is false when the ask ladder is empty.
func (book *OrderBook) BestAsk() (price int64, size int64, ok bool) {
	price, ok = book.askQueue.bestPrice()
	if !ok {
		return 0, 0, false
	}

	return price, book.askQueue.sizeAt(price), true
}

// Depth returns the top levels of both sides with per-level aggregated size
// and order count. It is read-only and never mutates the book.
func (book *OrderBook) Depth(limit uint32) *Depth {
	return &Depth{
		UpdateID: book.seqID,
		Asks:     book.askQueue.depth(limit),
		Bids:     book.bidQueue.depth(limit),
	}
}

// Order finds a resting order by ID, or nil if it is not in the book.
func (book *OrderBook) Order(id uint64) *Order {
	if order := book.askQueue.order(id); order != nil {
		return order
	}
	return book.bidQueue.order(id)
}

// Stats returns ladder statistics for the order book.
func (book *OrderBook) Stats() BookStats {
	return BookStats{
		AskDepthCount: book.askQueue.depthCount(),
		AskOrderCount: book.askQueue.orderCount(),
		BidDepthCount: book.bidQueue.depthCount(),
		BidOrderCount: book.bidQueue.orderCount(),
	}
}

// Snapshot captures the full resting state of the order book.
func (book *OrderBook) Snapshot() *BookSnapshot {
	return &BookSnapshot{
		Symbol:       book.symbol,
		SeqID:        book.seqID,
		TradeID:      book.tradeID,
		LastSequence: book.seq.LastArrival(),
		Bids:         book.bidQueue.toSnapshot(),
		Asks:         book.askQueue.toSnapshot(),
	}
}
