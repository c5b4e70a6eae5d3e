// Package order builds normalized line-item lists from a product
// selection, converting native prices to the buyer's display currency.
package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"inventory-request-service/internal/catalog"
	"inventory-request-service/internal/currency"
	"inventory-request-service/internal/models"
)

var (
	// ErrEmptyCart means no line has a positive quantity; no request may
	// be created from such a selection.
	ErrEmptyCart = errors.New("no items selected")

	// ErrUnsupportedCurrency means a native->display conversion has no
	// rate in either direction. The rate table signals this with a zero
	// multiplier; the builder refuses to turn that into a free item.
	ErrUnsupportedCurrency = errors.New("unsupported currency pair")
)

// Build converts a productID->quantity selection into line items priced in
// the display currency, plus the grand total. Negative quantities are
// clamped to zero and zero quantities are skipped. The grand total is
// always re-derived as the sum of line totals; line totals are exactly
// unit price times quantity with no intermediate rounding.
//
// Items come out in catalog order so that identical selections always
// produce identical requests (and identical rendered invoices).
func Build(selection map[string]int, country currency.Country) (models.LineItems, decimal.Decimal, error) {
	for id := range selection {
		if _, ok := catalog.ByID(id); !ok {
			return nil, decimal.Zero, fmt.Errorf("unknown product: %s", id)
		}
	}

	var items models.LineItems
	total := decimal.Zero

	for _, p := range catalog.All() {
		qty, ok := selection[p.ID]
		if !ok || qty <= 0 {
			continue
		}

		if !currency.Supported(p.NativeCurrency, country.Currency) {
			return nil, decimal.Zero, fmt.Errorf("%w: %s->%s for product %s",
				ErrUnsupportedCurrency, p.NativeCurrency, country.Currency, p.ID)
		}

		unit := currency.Convert(p.NativePrice, p.NativeCurrency, country.Currency)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(qty)))

		items = append(items, models.LineItem{
			ProductID:      p.ID,
			ProductName:    p.Name,
			Quantity:       qty,
			UnitPrice:      unit,
			TotalPrice:     lineTotal,
			Currency:       country.Currency,
			CurrencySymbol: country.Symbol,
		})
		total = total.Add(lineTotal)
	}

	if len(items) == 0 {
		return nil, decimal.Zero, ErrEmptyCart
	}

	return items, total, nil
}
