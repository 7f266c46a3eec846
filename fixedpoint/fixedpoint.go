// Package fixedpoint converts between decimal prices/quantities at the caller
// boundary and the integer units the matching core operates on. The core
// itself is decimal-agnostic.
package fixedpoint

import (
	"github.com/shopspring/decimal"
)

// Scale is a fixed-point scaling convention expressed as a decimal exponent:
// Scale(2) maps dollars to cents, Scale(4) maps a quantity to 1e-4 units.
type Scale int32

// ToUnits converts a decimal value into integer units, truncating any
// fractional remainder toward zero.
func (s Scale) ToUnits(d decimal.Decimal) int64 {
	return d.Shift(int32(s)).IntPart()
}

// FromUnits converts integer units back into a decimal value for display.
func (s Scale) FromUnits(units int64) decimal.Decimal {
	return decimal.New(units, -int32(s))
}
