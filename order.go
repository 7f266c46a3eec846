package match

import (
	"sync"
	"time"
)

// Side represents the order side (Buy/Sell).
type Side int8

const (
	Buy  Side = 1
	Sell Side = 2
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Order represents the state of a resting order in the order book.
// Price and Quantity are integers in the smallest currency/tradable unit;
// the decimal boundary lives in the fixedpoint package.
// Sequence is the arrival stamp used as the time-priority tiebreaker.
type Order struct {
	ID       uint64 `json:"id"`
	Side     Side   `json:"side"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Sequence uint64 `json:"sequence"`

	// Intrusive linked list pointers (ignored by JSON)
	next *Order
	prev *Order
}

// Trade is a single execution. Price is always the maker's price:
// price improvement accrues to the taker.
type Trade struct {
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	MakerID  uint64 `json:"maker_id"`
	TakerID  uint64 `json:"taker_id"`
}

// LogType represents the type of event log.
type LogType string

const (
	LogTypeOpen  LogType = "open"
	LogTypeMatch LogType = "match"
)

// BookLog represents a state-affecting event in the order book.
// SequenceID is a strictly increasing ID for every event, used for ordering,
// deduplication, and depth rebuild in downstream views.
type BookLog struct {
	SequenceID   uint64    `json:"seq_id"`
	TradeID      uint64    `json:"trade_id,omitempty"` // Sequential trade ID, only set for Match events
	Type         LogType   `json:"type"`
	Symbol       string    `json:"symbol"`
	Side         Side      `json:"side"` // Taker side for Match events
	Price        int64     `json:"price"`
	Size         int64     `json:"size"`
	OrderID      uint64    `json:"order_id"`
	MakerOrderID uint64    `json:"maker_order_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

var bookLogPool = sync.Pool{
	New: func() interface{} {
		return new(BookLog)
	},
}

func acquireBookLog() *BookLog {
	return bookLogPool.Get().(*BookLog)
}

func releaseBookLog(log *BookLog) {
	*log = BookLog{}
	bookLogPool.Put(log)
}
