package fixedpoint

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScaleToUnits(t *testing.T) {
	cents := Scale(2)
	lots := Scale(4)

	assert.Equal(t, int64(100000), cents.ToUnits(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(99550), cents.ToUnits(decimal.RequireFromString("995.50")))
	assert.Equal(t, int64(150000), lots.ToUnits(decimal.NewFromInt(15)))

	t.Run("fractional remainders truncate toward zero", func(t *testing.T) {
		assert.Equal(t, int64(10050), cents.ToUnits(decimal.RequireFromString("100.509")))
		assert.Equal(t, int64(199999), lots.ToUnits(decimal.RequireFromString("19.99999")))
		assert.Equal(t, int64(0), lots.ToUnits(decimal.RequireFromString("0.00009")))
		assert.Equal(t, int64(-10050), cents.ToUnits(decimal.RequireFromString("-100.509")))
	})
}

func TestScaleFromUnits(t *testing.T) {
	cents := Scale(2)
	lots := Scale(4)

	assert.Equal(t, "1000", cents.FromUnits(100000).String())
	assert.Equal(t, "995.5", cents.FromUnits(99550).String())
	assert.Equal(t, "5", lots.FromUnits(50000).String())
	assert.Equal(t, "0.0001", lots.FromUnits(1).String())
}

func TestScaleRoundTrip(t *testing.T) {
	lots := Scale(4)

	for _, units := range []int64{0, 1, 9999, 10000, 123456789} {
		assert.Equal(t, units, lots.ToUnits(lots.FromUnits(units)))
	}
}
