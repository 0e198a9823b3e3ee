package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money rounds an amount to two decimal places for presentation.
// Non-finite amounts (a degenerate statement for a worker without salary) render as zero.
func Money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// Hours rounds a duration in hours to two decimal places.
func Hours(v float64) decimal.Decimal {
	return Money(v)
}
