package invoice

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-request-service/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func testSeller() models.AddressBlock {
	return models.AddressBlock{
		Name:  "Gusto Brands Limited",
		Email: "orders@gustobrands.example",
		Lines: []string{"Unit 2A, 17/F, Glenealy Tower", "No.1 Glenealy, Central", "Hong Kong"},
	}
}

func testRequest(items models.LineItems) *models.InventoryRequest {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return &models.InventoryRequest{
		ID:            "req-1",
		UserName:      "Hana Tanaka",
		UserEmail:     "hana@example.com",
		Items:         items,
		TotalAmount:   total,
		Currency:      "JPY",
		InvoiceNumber: "INV-2026-0001",
	}
}

func item(id, name string, qty int, unit string) models.LineItem {
	u, _ := decimal.NewFromString(unit)
	return models.LineItem{
		ProductID:   id,
		ProductName: name,
		Quantity:    qty,
		UnitPrice:   u,
		TotalPrice:  u.Mul(decimal.NewFromInt(int64(qty))),
		Currency:    "JPY",
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := NewRenderer(testSeller())
	r.Clock = fixedClock

	req := testRequest(models.LineItems{
		item("PKA0020KYSSDPKK", "Pet Kiss Dental Gum", 2, "17000"),
		item("SFI0010", "Salmon Feast Medley", 1, "4200"),
	})

	out, err := r.Render(req, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_DeterministicWithFixedClock(t *testing.T) {
	// Regular and bold faces both end up in the font dictionary; repeated
	// renders must still produce the same bytes, including the document
	// dates and the dictionary order.
	req := testRequest(models.LineItems{
		item("PKA0020KYSSDPKK", "Pet Kiss Dental Gum", 2, "17000"),
		item("SFI0010", "Salmon Feast Medley", 1, "4200"),
	})

	r := NewRenderer(testSeller())
	r.Clock = fixedClock

	first, err := r.Render(req, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := r.Render(req, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_PaginatesLongItemTables(t *testing.T) {
	var items models.LineItems
	for i := 0; i < 40; i++ {
		items = append(items, item(fmt.Sprintf("PKA%04d", i), fmt.Sprintf("Bulk Line Item %d", i), 1, "1000"))
	}

	r := NewRenderer(testSeller())
	r.Clock = fixedClock

	short, err := r.Render(testRequest(items[:2]), nil)
	require.NoError(t, err)
	long, err := r.Render(testRequest(items), nil)
	require.NoError(t, err)

	// 40 rows at 14mm cannot fit one A4 page; the long document must
	// carry the repeated table header on later pages.
	assert.Greater(t, len(long), len(short))
}

func TestRender_UsesDistributorAddresses(t *testing.T) {
	dist := &models.DistributorProfile{
		ID: "distributor-3",
		Office: models.AddressBlock{
			Name:  "Happy Dog Inc",
			Email: "office@happydog.example",
			Lines: []string{"1 Harbour Road", "Wan Chai", "Hong Kong"},
		},
		Delivery: models.AddressBlock{
			Name:  "Nirvasian Fullfillment Centre",
			Email: "warehouse@nirvasian.example",
			Lines: []string{"Kwai Chung Container Terminal", "New Territories"},
		},
	}

	r := NewRenderer(testSeller())
	r.Clock = fixedClock

	req := testRequest(models.LineItems{item("6001234", "COBB Chicken Jerky", 3, "12.50")})

	withDist, err := r.Render(req, dist)
	require.NoError(t, err)
	withoutDist, err := r.Render(req, nil)
	require.NoError(t, err)

	// Different address blocks produce different documents.
	assert.NotEqual(t, withDist, withoutDist)
}

func TestRender_ShowFromBlock(t *testing.T) {
	req := testRequest(models.LineItems{item("PKA0001", "Dental Chews", 1, "900")})

	r := NewRenderer(testSeller())
	r.Clock = fixedClock
	compact, err := r.Render(req, nil)
	require.NoError(t, err)

	r.ShowFromBlock = true
	full, err := r.Render(req, nil)
	require.NoError(t, err)

	assert.NotEqual(t, compact, full)
}
