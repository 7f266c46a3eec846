package match

import (
	"github.com/shopspring/decimal"

	"github.com/valhallaex/matching-engine/fixedpoint"
)

// Placement reports the outcome of one order submission: the allocated order
// ID, the executions it caused (possibly none), and the residual order state
// if part of it rests in the book.
type Placement struct {
	OrderID uint64  `json:"order_id"`
	Trades  []Trade `json:"trades"`
	Resting *Order  `json:"resting,omitempty"`
}

// Engine is the caller-facing context for one instrument: it owns the order
// book, the sequencer, and the trade tape, and converts decimal input into
// the integer units the book operates on. There is no package-level state;
// everything lives on the Engine instance.
//
// Like the book it owns, an Engine is single-threaded; wrap it in a
// SerialBook to serve concurrent submitters.
type Engine struct {
	symbol     string
	priceScale fixedpoint.Scale
	qtyScale   fixedpoint.Scale
	seq        *Sequencer
	publisher  Publisher
	book       *OrderBook
	tape       *TradeTape
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithPublisher attaches a book log publisher to the engine's order book.
func WithPublisher(p Publisher) EngineOption {
	return func(e *Engine) {
		e.publisher = p
	}
}

// WithScales overrides the price and quantity fixed-point scales.
func WithScales(price, quantity fixedpoint.Scale) EngineOption {
	return func(e *Engine) {
		e.priceScale = price
		e.qtyScale = quantity
	}
}

// WithIDBase overrides the first order ID the engine allocates.
func WithIDBase(base uint64) EngineOption {
	return func(e *Engine) {
		e.seq = NewSequencer(base)
	}
}

// NewEngine creates an engine for one instrument. Defaults: prices in cents,
// quantities in 1e-4 units, order IDs from DefaultOrderIDBase, book logs
// discarded.
func NewEngine(symbol string, opts ...EngineOption) *Engine {
	e := &Engine{
		symbol:     symbol,
		priceScale: fixedpoint.Scale(2),
		qtyScale:   fixedpoint.Scale(4),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.seq == nil {
		e.seq = NewSequencer(DefaultOrderIDBase)
	}
	if e.publisher == nil {
		e.publisher = NewDiscardPublisher()
	}

	e.book = NewOrderBook(symbol, e.seq, e.publisher)
	e.tape = NewTradeTape()

	return e
}

// Symbol returns the instrument this engine trades.
func (e *Engine) Symbol() string {
	return e.symbol
}

// Book exposes the underlying order book for read-only queries.
func (e *Engine) Book() *OrderBook {
	return e.book
}

// Tape exposes the engine's trade tape.
func (e *Engine) Tape() *TradeTape {
	return e.tape
}

// PriceScale returns the engine's price scaling convention.
func (e *Engine) PriceScale() fixedpoint.Scale {
	return e.priceScale
}

// QuantityScale returns the engine's quantity scaling convention.
func (e *Engine) QuantityScale() fixedpoint.Scale {
	return e.qtyScale
}

// PlaceOrder converts the decimal price and quantity into integer units
// (truncating fractional remainders), allocates an order ID, and submits the
// order to the book. Non-positive values after conversion are rejected before
// any state changes.
func (e *Engine) PlaceOrder(side Side, price, quantity decimal.Decimal) (*Placement, error) {
	priceUnits := e.priceScale.ToUnits(price)
	if priceUnits <= 0 {
		return nil, ErrInvalidPrice
	}

	qtyUnits := e.qtyScale.ToUnits(quantity)
	if qtyUnits <= 0 {
		return nil, ErrInvalidQuantity
	}

	id := e.seq.NextOrderID()

	trades, err := e.book.PlaceOrder(side, priceUnits, qtyUnits, id)
	if err != nil {
		return nil, err
	}

	e.tape.Record(trades...)

	placement := &Placement{
		OrderID: id,
		Trades:  trades,
	}

	if resting := e.book.Order(id); resting != nil {
		cpy := *resting
		cpy.next = nil
		cpy.prev = nil
		placement.Resting = &cpy
	}

	return placement, nil
}
