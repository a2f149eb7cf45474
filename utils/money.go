package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice formats an amount as a string like "€12,500.00".
// Uses comma as thousands separator.
func FormatPrice(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 2)
	if neg {
		b.WriteString("-€")
	} else {
		b.WriteString("€")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
