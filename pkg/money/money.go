// Package money centralizes the rounding policies applied to every monetary
// field the generators emit. Amounts are INR, kept as float64 in the dataset
// but rounded through decimal so repeated runs agree to the paisa.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places (paise).
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round4 rounds to 4 decimal places; used for rates and risk fractions.
func Round4(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}

// RoundThousand rounds to the nearest 1,000; sanctioned amounts and
// collateral valuations are always quoted to the thousand.
func RoundThousand(v float64) float64 {
	f, _ := decimal.NewFromFloat(v / 1000).Round(0).Float64()
	return f * 1000
}
