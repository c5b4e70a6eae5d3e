package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with fixed two decimals and thousand
// grouping, prefixed by the currency code: "JPY 34,000.00". Rounding
// happens here and nowhere earlier.
func FormatAmount(code string, amount decimal.Decimal) string {
	return code + " " + GroupDigits(amount.StringFixed(2))
}

// GroupDigits inserts comma separators into the integer part of a fixed
// decimal string.
func GroupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
