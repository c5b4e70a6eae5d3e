package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"inventory-request-service/internal/models"
)

func submittedEvent() *models.RequestSubmittedEvent {
	return &models.RequestSubmittedEvent{
		UserName:  "Hana Tanaka",
		UserEmail: "hana@example.com",
		Items: []models.LineItem{{
			ProductID:   "PKA0020KYSSDPKK",
			ProductName: "Pet Kiss Dental Gum",
			Quantity:    2,
			UnitPrice:   decimal.NewFromInt(17000),
			TotalPrice:  decimal.NewFromInt(34000),
			Currency:    "JPY",
		}},
		TotalAmount: "34000",
		Currency:    "JPY",
		Symbol:      "¥",
		UserNotes:   "<ship before friday>",
	}
}

func TestDisabledMailerReturnsErrNotConfigured(t *testing.T) {
	m := New("", "orders@example.com", "admin@example.com")
	assert.False(t, m.Enabled())

	_, err := m.SendAdminNewRequest(context.Background(), submittedEvent())
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = m.SendStatusUpdate(context.Background(), &models.StatusChangedEvent{Status: models.StatusApproved})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAdminNewRequestHTML(t *testing.T) {
	body := adminNewRequestHTML(submittedEvent())
	assert.Contains(t, body, "Hana Tanaka")
	assert.Contains(t, body, "PKA0020KYSSDPKK")
	assert.Contains(t, body, "34000.00")
	// User-provided text must be escaped.
	assert.NotContains(t, body, "<ship before friday>")
	assert.Contains(t, body, "&lt;ship before friday&gt;")
}

func TestStatusUpdateHTML(t *testing.T) {
	approved := statusUpdateHTML(&models.StatusChangedEvent{
		UserName: "Hana Tanaka",
		Status:   models.StatusApproved,
	})
	assert.Contains(t, approved, "approved")
	assert.Contains(t, approved, "invoice will follow")

	rejected := statusUpdateHTML(&models.StatusChangedEvent{
		UserName:     "Hana Tanaka",
		Status:       models.StatusRejected,
		AdminComment: "out of stock",
	})
	assert.Contains(t, rejected, "rejected")
	assert.Contains(t, rejected, "out of stock")
	assert.NotContains(t, rejected, "invoice will follow")
}

func TestInvoiceHTML(t *testing.T) {
	due := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)
	body := invoiceHTML(&models.InventoryRequest{
		UserName:       "Hana Tanaka",
		InvoiceNumber:  "INV-2026-0001",
		TotalAmount:    decimal.NewFromInt(34000),
		Currency:       "JPY",
		CurrencySymbol: "¥",
		DueDate:        &due,
	})
	assert.Contains(t, body, "INV-2026-0001")
	assert.Contains(t, body, "April 14, 2026")
	assert.Contains(t, body, "34000.00")
}
