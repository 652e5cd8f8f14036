package utils

import "github.com/shopspring/decimal"

// FormatAmount renders an amount with at least two fraction digits and
// never drops precision the value actually has.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
