package match

import "errors"

var (
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrTimeout         = errors.New("timeout")
	ErrShutdown        = errors.New("order book is shutting down")
	ErrSequenceGap     = errors.New("book log sequence gap detected")
)
