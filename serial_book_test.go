package match

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialBookPlaceOrder(t *testing.T) {
	ctx := context.Background()

	engine := NewEngine("VAL/USD")
	serial := NewSerialBook(engine)
	go func() {
		_ = serial.Start()
	}()

	placement, err := serial.PlaceOrder(ctx, Buy, decimal.NewFromInt(1000), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Empty(t, placement.Trades)
	require.NotNil(t, placement.Resting)

	placement, err = serial.PlaceOrder(ctx, Sell, decimal.NewFromInt(1000), decimal.NewFromInt(4))
	require.NoError(t, err)
	require.Len(t, placement.Trades, 1)
	assert.Equal(t, int64(100000), placement.Trades[0].Price)

	// Rejections surface through the boundary too
	_, err = serial.PlaceOrder(ctx, Sell, decimal.Zero, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidPrice)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, serial.Shutdown(shutdownCtx))
}

func TestSerialBookSerializesConcurrentSubmitters(t *testing.T) {
	ctx := context.Background()

	engine := NewEngine("VAL/USD")
	serial := NewSerialBook(engine)
	go func() {
		_ = serial.Start()
	}()

	// Many goroutines submit matching pairs; the single consumer applies
	// them one at a time, so conservation holds regardless of ordering.
	const submitters = 8
	const perSubmitter = 50

	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(side Side) {
			defer wg.Done()
			for j := 0; j < perSubmitter; j++ {
				_, err := serial.PlaceOrder(ctx, side, decimal.NewFromInt(1000), decimal.NewFromInt(1))
				assert.NoError(t, err)
			}
		}(Side(i%2 + 1))
	}
	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, serial.Shutdown(shutdownCtx))

	// Equal buy and sell flow at one price nets out completely
	stats := engine.Book().Stats()
	assert.Equal(t, int64(0), stats.BidOrderCount+stats.AskOrderCount)
	assert.Equal(t, submitters/2*perSubmitter*10000, int(totalTraded(engine.Tape())))
}

func totalTraded(tape *TradeTape) int64 {
	var total int64
	for _, exec := range tape.Recent(tape.Len()) {
		total += exec.Trade.Quantity
	}
	return total
}

func TestSerialBookShutdown(t *testing.T) {
	ctx := context.Background()

	engine := NewEngine("VAL/USD")
	serial := NewSerialBook(engine)
	go func() {
		_ = serial.Start()
	}()

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, serial.Shutdown(shutdownCtx))

	// New submissions are refused after shutdown
	_, err := serial.PlaceOrder(ctx, Buy, decimal.NewFromInt(1), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrShutdown)

	// Shutdown is idempotent
	require.NoError(t, serial.Shutdown(shutdownCtx))
}
