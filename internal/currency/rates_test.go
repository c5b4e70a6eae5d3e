package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateIdentity(t *testing.T) {
	for _, code := range []string{"JPY", "USD", "EUR", "GBP", "PHP", "XXX"} {
		assert.True(t, Rate(code, code).Equal(decimal.NewFromInt(1)), code)
	}
}

func TestRateDirect(t *testing.T) {
	assert.True(t, Rate("JPY", "USD").Equal(decimal.NewFromFloat(0.0067)))
	assert.True(t, Rate("USD", "JPY").Equal(decimal.NewFromFloat(149.25)))
}

func TestRateReciprocalFallback(t *testing.T) {
	// JPY->PHP has no direct entry; derived from PHP->JPY = 2.5.
	want := decimal.NewFromInt(1).Div(decimal.NewFromFloat(2.5))
	assert.True(t, Rate("JPY", "PHP").Equal(want))
}

func TestRateUnsupportedPair(t *testing.T) {
	// Two minor currencies with no entry in either direction.
	assert.True(t, Rate("AFN", "PHP").IsZero())
	assert.True(t, Rate("XXX", "JPY").IsZero())
	assert.False(t, Supported("AFN", "PHP"))
	assert.True(t, Supported("JPY", "USD"))
}

func TestConvertIdentityExact(t *testing.T) {
	amount := decimal.RequireFromString("17000.123456789")
	assert.True(t, Convert(amount, "JPY", "JPY").Equal(amount))
}

func TestConvertRoundTrip(t *testing.T) {
	// convert(x, A, B) * convert(1, B, A) ~ x within snapshot tolerance.
	// Snapshot rates are independently quoted, so allow a few percent.
	pairs := [][2]string{{"JPY", "USD"}, {"USD", "EUR"}, {"GBP", "JPY"}, {"PHP", "USD"}}
	x := decimal.NewFromInt(1000)

	for _, p := range pairs {
		there := Convert(x, p[0], p[1])
		back := Convert(there, p[1], p[0])
		ratio := back.Div(x).InexactFloat64()
		assert.InDelta(t, 1.0, ratio, 0.06, "%s<->%s", p[0], p[1])
	}
}

func TestConvertUnsupportedYieldsZero(t *testing.T) {
	got := Convert(decimal.NewFromInt(500), "AFN", "PHP")
	assert.True(t, got.IsZero())
}

func TestCountryDirectory(t *testing.T) {
	jp, ok := CountryByName("Japan")
	assert.True(t, ok)
	assert.Equal(t, "JPY", jp.Currency)
	assert.Equal(t, "¥", jp.Symbol)

	_, ok = CountryByName("Atlantis")
	assert.False(t, ok)

	assert.Equal(t, "$", SymbolFor("USD"))
	assert.Equal(t, "XTS", SymbolFor("XTS"))
}
