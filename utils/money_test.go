package utils

import "testing"

func TestFormatPHP(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₱0.00"},
		{5, "₱5.00"},
		{999, "₱999.00"},
		{1000, "₱1,000.00"},
		{12500, "₱12,500.00"},
		{1234567.5, "₱1,234,567.50"},
		{-130, "-₱130.00"},
		{80.25, "₱80.25"},
	}

	for _, c := range cases {
		if got := FormatPHP(c.amount); got != c.want {
			t.Errorf("FormatPHP(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}
