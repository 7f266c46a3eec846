package match

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type placeOrderRequest struct {
	side     Side
	price    decimal.Decimal
	quantity decimal.Decimal
	resp     chan placeOrderResponse
}

type placeOrderResponse struct {
	placement *Placement
	err       error
}

// SerialBook is the single-writer boundary around an Engine: submissions from
// any number of goroutines are funneled through one command channel and
// applied by a single consumer, so matching never runs concurrently against
// the same instrument's ladders.
type SerialBook struct {
	engine           *Engine
	isShutdown       atomic.Bool
	cmdChan          chan *placeOrderRequest
	done             chan struct{}
	shutdownComplete chan struct{}
}

// NewSerialBook wraps an engine behind a single-writer command channel.
// Call Start on its own goroutine before submitting orders.
func NewSerialBook(engine *Engine) *SerialBook {
	return &SerialBook{
		engine:           engine,
		cmdChan:          make(chan *placeOrderRequest, 32768),
		done:             make(chan struct{}),
		shutdownComplete: make(chan struct{}),
	}
}

// PlaceOrder submits an order and waits for the matching outcome.
// Returns ErrShutdown if the book is shutting down, or ErrTimeout if the
// context expires first.
func (s *SerialBook) PlaceOrder(ctx context.Context, side Side, price, quantity decimal.Decimal) (*Placement, error) {
	if s.isShutdown.Load() {
		return nil, ErrShutdown
	}

	req := &placeOrderRequest{
		side:     side,
		price:    price,
		quantity: quantity,
		resp:     make(chan placeOrderResponse, 1),
	}

	select {
	case s.cmdChan <- req:
	case <-ctx.Done():
		return nil, ErrTimeout
	}

	select {
	case resp := <-req.resp:
		return resp.placement, resp.err
	case <-ctx.Done():
		return nil, ErrTimeout
	}
}

// Start runs the consumer loop. It returns nil when Shutdown is called and
// all pending submissions are drained.
func (s *SerialBook) Start() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-s.done:
			return s.drain()
		case req := <-s.cmdChan:
			s.process(req)
		}
	}
}

// Shutdown signals the consumer to stop and waits for pending submissions to
// be applied. Returns ctx.Err() if the context expires first.
func (s *SerialBook) Shutdown(ctx context.Context) error {
	if s.isShutdown.CompareAndSwap(false, true) {
		close(s.done)
	}

	select {
	case <-s.shutdownComplete:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SerialBook) process(req *placeOrderRequest) {
	placement, err := s.engine.PlaceOrder(req.side, req.price, req.quantity)
	if err != nil {
		logger.Warn("order rejected",
			zap.String("symbol", s.engine.Symbol()),
			zap.String("side", req.side.String()),
			zap.Error(err))
	}

	select {
	case req.resp <- placeOrderResponse{placement: placement, err: err}:
	default:
		// Non-blocking send, if no one is listening, just drop it
	}
}

// drain applies all remaining submissions before returning.
func (s *SerialBook) drain() error {
	defer close(s.shutdownComplete)

	for {
		select {
		case req := <-s.cmdChan:
			s.process(req)
		default:
			// Channel empty, shutdown complete
			return nil
		}
	}
}
