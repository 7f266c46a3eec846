package console

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	match "github.com/valhallaex/matching-engine"
	"github.com/valhallaex/matching-engine/fixedpoint"
)

func testRenderer() *Renderer {
	return &Renderer{
		Symbol:        "VAL/USD",
		PriceScale:    fixedpoint.Scale(2),
		QuantityScale: fixedpoint.Scale(4),
		TapeLimit:     10,
	}
}

func TestParseSide(t *testing.T) {
	for input, want := range map[string]match.Side{
		"buy":  match.Buy,
		"b":    match.Buy,
		"BUY":  match.Buy,
		"sell": match.Sell,
		"s":    match.Sell,
		" S ":  match.Sell,
	} {
		side, err := ParseSide(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, side, input)
	}

	_, err := ParseSide("hold")
	assert.Error(t, err)
}

func TestViewRendersBookAndTape(t *testing.T) {
	r := testRenderer()

	depth := &match.Depth{
		Asks: []*match.DepthItem{
			{Price: 100500, Size: 200000, Count: 1},
			{Price: 101000, Size: 300000, Count: 2},
		},
		Bids: []*match.DepthItem{
			{Price: 99500, Size: 150000, Count: 1},
		},
	}

	execs := []match.Execution{
		{
			Ref:   "exec-1",
			Trade: match.Trade{Price: 100500, Quantity: 50000, MakerID: 1, TakerID: 2},
			Time:  time.Date(2025, 1, 2, 9, 30, 15, 0, time.UTC),
		},
	}

	out := r.View(depth, execs)

	assert.Contains(t, out, "VAL/USD ORDER BOOK")
	assert.Contains(t, out, "1005.00")
	assert.Contains(t, out, "1010.00")
	assert.Contains(t, out, "995.00")
	assert.Contains(t, out, "spread: $10.00")
	assert.Contains(t, out, "TIME & SALES")
	assert.Contains(t, out, "09:30:15")
	assert.Contains(t, out, "5.0000")

	// Asks render highest price first
	assert.Less(t, strings.Index(out, "1010.00"), strings.Index(out, "1005.00"))
}

func TestViewEmptyBook(t *testing.T) {
	r := testRenderer()

	out := r.View(&match.Depth{}, nil)

	assert.Contains(t, out, "spread: n/a")
	assert.Contains(t, out, "No trades yet")
}

func TestFormatTrade(t *testing.T) {
	r := testRenderer()

	line := r.FormatTrade(match.Trade{Price: 100000, Quantity: 50000, MakerID: 1000, TakerID: 1001})

	assert.Equal(t, "5.0000 @ $1000.00 = $5000.00 (maker #1000, taker #1001)", line)
}
