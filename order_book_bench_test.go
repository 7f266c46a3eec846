package match

import (
	"testing"
)

func BenchmarkPlaceOrderInsert(b *testing.B) {
	book := NewOrderBook("VAL/USD", NewSequencer(DefaultOrderIDBase), NewDiscardPublisher())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Spread bids over 1000 price levels so nothing crosses
		price := int64(100000 - i%1000)
		_, _ = book.PlaceOrder(Buy, price, 100, uint64(i+1))
	}
}

func BenchmarkPlaceOrderMatch(b *testing.B) {
	book := NewOrderBook("VAL/USD", NewSequencer(DefaultOrderIDBase), NewDiscardPublisher())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate sides at one price so every second order crosses
		side := Buy
		if i%2 == 1 {
			side = Sell
		}
		_, _ = book.PlaceOrder(side, 100000, 100, uint64(i+1))
	}
}

func BenchmarkQueueInsertRemove(b *testing.B) {
	q := NewSellerQueue()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		order := &Order{
			ID:       uint64(i + 1),
			Side:     Sell,
			Price:    int64(100 + i%100),
			Quantity: 10,
			Sequence: uint64(i + 1),
		}
		q.insertOrder(order, false)
		q.removeOrder(order.Price, order.ID)
	}
}
