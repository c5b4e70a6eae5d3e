package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is an orderable catalog item priced in its native currency.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	NativePrice       decimal.Decimal `json:"native_price"`
	NativeCurrency    string          `json:"native_currency"`
	AvailableQuantity int             `json:"available_quantity"`
	DistributorTag    string          `json:"distributor_tag"`
}

// LineItem is one product+quantity entry of a request, priced in the
// buyer's display currency. TotalPrice is always UnitPrice * Quantity;
// nothing is rounded before display formatting.
type LineItem struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// LineItems is stored as a single JSONB column.
type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	return json.Marshal(li)
}

func (li *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	case nil:
		*li = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LineItems", src)
	}
}

// InventoryRequest is the persisted order record driven through the
// pending -> approved/rejected -> completed lifecycle by admin actions.
type InventoryRequest struct {
	ID             string          `db:"id" json:"id"`
	UserName       string          `db:"user_name" json:"user_name"`
	UserEmail      string          `db:"user_email" json:"user_email"`
	Items          LineItems       `db:"items" json:"items"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	Currency       string          `db:"currency" json:"currency"`
	CurrencySymbol string          `db:"currency_symbol" json:"currency_symbol"`
	Status         string          `db:"status" json:"status"`
	InvoiceNumber  string          `db:"invoice_number" json:"invoice_number,omitempty"`
	DueDate        *time.Time      `db:"due_date" json:"due_date,omitempty"`
	UserNotes      string          `db:"user_notes" json:"user_notes,omitempty"`
	AdminComment   string          `db:"admin_comment" json:"admin_comment,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Request statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// CanTransition reports whether a status change is legal. Rejected and
// completed are terminal; approved can only move to completed (invoice
// generation).
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusCompleted
	default:
		return false
	}
}

// AddressBlock is one postal/contact identity printed on an invoice.
type AddressBlock struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Lines []string `json:"lines"`
}

// DistributorProfile is a fulfillment partner responsible for a set of
// product code prefixes, with its own From (office) and To (delivery)
// identities.
type DistributorProfile struct {
	ID                  string       `json:"id"`
	Office              AddressBlock `json:"office"`
	Delivery            AddressBlock `json:"delivery"`
	ProductCodePrefixes []string     `json:"product_code_prefixes"`
}
