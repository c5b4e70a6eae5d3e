package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-request-service/internal/currency"
)

var (
	japan        = currency.Country{Name: "Japan", Currency: "JPY", Symbol: "¥"}
	unitedStates = currency.Country{Name: "United States", Currency: "USD", Symbol: "$"}
)

func TestBuildNativeCurrency(t *testing.T) {
	items, total, err := Build(map[string]int{"PKA0020KYSSDPKK": 2}, japan)
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "PKA0020KYSSDPKK", it.ProductID)
	assert.Equal(t, 2, it.Quantity)
	assert.True(t, it.UnitPrice.Equal(decimal.NewFromInt(17000)))
	assert.True(t, it.TotalPrice.Equal(decimal.NewFromInt(34000)))
	assert.Equal(t, "JPY", it.Currency)
	assert.Equal(t, "¥", it.CurrencySymbol)
	assert.True(t, total.Equal(decimal.NewFromInt(34000)))
}

func TestBuildConvertedCurrency(t *testing.T) {
	// JPY->USD at the snapshot rate 0.0067: 17000 * 2 * 0.0067 = 227.80.
	items, total, err := Build(map[string]int{"PKA0020KYSSDPKK": 2}, unitedStates)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "227.80", total.StringFixed(2))
	assert.Equal(t, "113.90", items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "USD", items[0].Currency)
}

func TestBuildGrandTotalIsSumOfLines(t *testing.T) {
	items, total, err := Build(map[string]int{
		"PKA0020KYSSDPKK": 2,
		"SFI0012KPPSXZZZ": 3,
	}, japan)
	require.NoError(t, err)
	require.Len(t, items, 2)

	sum := decimal.Zero
	for _, it := range items {
		assert.True(t, it.TotalPrice.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
		sum = sum.Add(it.TotalPrice)
	}
	assert.True(t, total.Equal(sum))
	assert.True(t, total.Equal(decimal.NewFromInt(2*17000+3*11000)))
}

func TestBuildDeterministicOrder(t *testing.T) {
	sel := map[string]int{
		"6009688702712":   1,
		"PKA0020KYSSDPKK": 1,
		"CCT0005KPPSXZZZ": 1,
	}

	first, _, err := Build(sel, unitedStates)
	require.NoError(t, err)
	second, _, err := Build(sel, unitedStates)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ProductID, second[i].ProductID)
	}
}

func TestBuildEmptySelection(t *testing.T) {
	_, _, err := Build(map[string]int{}, japan)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// All-zero quantities count as empty.
	_, _, err = Build(map[string]int{"PKA0020KYSSDPKK": 0}, japan)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildNegativeQuantityClamped(t *testing.T) {
	_, _, err := Build(map[string]int{"PKA0020KYSSDPKK": -5}, japan)
	assert.ErrorIs(t, err, ErrEmptyCart)

	items, total, err := Build(map[string]int{
		"PKA0020KYSSDPKK": -5,
		"SFI0012KPPSXZZZ": 1,
	}, japan)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SFI0012KPPSXZZZ", items[0].ProductID)
	assert.True(t, total.Equal(decimal.NewFromInt(11000)))
}

func TestBuildUnknownProduct(t *testing.T) {
	_, _, err := Build(map[string]int{"DOES-NOT-EXIST": 1}, japan)
	assert.Error(t, err)
}

func TestBuildUnsupportedCurrency(t *testing.T) {
	afghanistan := currency.Country{Name: "Afghanistan", Currency: "AFN", Symbol: "؋"}

	// JPY->AFN resolves via the reciprocal of AFN->JPY, so pick a pair
	// with no route: products are JPY/USD native and both have rates to
	// AFN, so force the error with a bogus display currency instead.
	nowhere := currency.Country{Name: "Nowhere", Currency: "XXX", Symbol: "?"}
	_, _, err := Build(map[string]int{"PKA0020KYSSDPKK": 1}, nowhere)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	// Sanity check that a reciprocal-only pair still works.
	_, total, err := Build(map[string]int{"PKA0020KYSSDPKK": 1}, afghanistan)
	assert.NoError(t, err)
	assert.True(t, total.IsPositive())
}
