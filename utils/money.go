package utils

import (
	"strconv"
	"strings"
)

// FormatPHP formats an amount in pesos as a string like "₱12,500.00".
// Uses comma as thousands separator and always shows centavos.
func FormatPHP(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + symbol + decimals
	b.Grow(len(s) + len(intPart)/3 + 4)
	if neg {
		b.WriteString("-₱")
	} else {
		b.WriteString("₱")
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
	b.WriteString(fracPart)
	return b.String()
}
