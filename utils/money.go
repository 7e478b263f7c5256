package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round1 rounds a percentage to 1 decimal place.
func Round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}

// FormatPeso renders an amount for display, e.g. "₱340.00".
func FormatPeso(v float64) string {
	return "₱" + decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPercent renders a signed percentage with 1 decimal, e.g. "+12.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", Round1(v))
}
