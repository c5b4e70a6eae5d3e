package models

import "time"

// Event types
const (
	EventTypeRequestSubmitted = "REQUEST_SUBMITTED"
	EventTypeStatusChanged    = "REQUEST_STATUS_CHANGED"
	EventTypeInvoiceIssued    = "INVOICE_ISSUED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// RequestSubmittedEvent published when a buyer submits a new request.
// The notification worker fans this out to the admin and the buyer.
type RequestSubmittedEvent struct {
	BaseEvent
	RequestID   string     `json:"request_id"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	Items       []LineItem `json:"items"`
	TotalAmount string     `json:"total_amount"`
	Currency    string     `json:"currency"`
	Symbol      string     `json:"currency_symbol"`
	UserNotes   string     `json:"user_notes,omitempty"`
}

// StatusChangedEvent published after an approve/reject transition has been
// persisted. Delivery is best-effort; the transition is already durable.
type StatusChangedEvent struct {
	BaseEvent
	RequestID    string `json:"request_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	Status       string `json:"status"`
	AdminComment string `json:"admin_comment,omitempty"`
}

// InvoiceIssuedEvent published after an invoice has been generated,
// uploaded and mailed (audit trail for downstream consumers).
type InvoiceIssuedEvent struct {
	BaseEvent
	RequestID     string `json:"request_id"`
	InvoiceNumber string `json:"invoice_number"`
	StorageKey    string `json:"storage_key"`
	EmailSent     bool   `json:"email_sent"`
}
