package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		code   string
		amount string
		want   string
	}{
		{"JPY", "34000", "JPY 34,000.00"},
		{"USD", "227.8", "USD 227.80"},
		{"USD", "1234567.891", "USD 1,234,567.89"},
		{"EUR", "0", "EUR 0.00"},
		{"HKD", "999.99", "HKD 999.99"},
	}
	for _, c := range cases {
		amt, err := decimal.NewFromString(c.amount)
		assert.NoError(t, err)
		assert.Equal(t, c.want, FormatAmount(c.code, amt), "amount %s", c.amount)
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1,000", GroupDigits("1000"))
	assert.Equal(t, "100", GroupDigits("100"))
	assert.Equal(t, "12,345,678.90", GroupDigits("12345678.90"))
	assert.Equal(t, "-34,000.00", GroupDigits("-34000.00"))
	assert.Equal(t, "0.50", GroupDigits("0.50"))
}
