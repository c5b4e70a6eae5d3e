// Package mailer sends transactional email through Resend: admin alerts on
// new requests, buyer confirmations, status decisions and the final invoice
// with its PDF attached.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"

	"inventory-request-service/internal/models"
)

// ErrNotConfigured is returned when no API key was supplied. Callers treat
// the mail channel as disabled rather than failing the surrounding flow.
var ErrNotConfigured = errors.New("mailer not configured")

type Mailer struct {
	client     *resend.Client
	from       string
	adminEmail string
}

// New creates a mailer. An empty API key yields a disabled mailer whose
// sends all return ErrNotConfigured.
func New(apiKey, from, adminEmail string) *Mailer {
	m := &Mailer{from: from, adminEmail: adminEmail}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

// Enabled reports whether the mailer has an API key.
func (m *Mailer) Enabled() bool {
	return m.client != nil
}

func (m *Mailer) send(ctx context.Context, to, subject, body string, attachments []*resend.Attachment) (string, error) {
	if m.client == nil {
		return "", ErrNotConfigured
	}
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:        m.from,
		To:          []string{to},
		Subject:     subject,
		Html:        body,
		Attachments: attachments,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return sent.Id, nil
}

// SendAdminNewRequest notifies the admin inbox about a freshly submitted
// request.
func (m *Mailer) SendAdminNewRequest(ctx context.Context, ev *models.RequestSubmittedEvent) (string, error) {
	subject := fmt.Sprintf("New inventory request from %s", ev.UserName)
	return m.send(ctx, m.adminEmail, subject, adminNewRequestHTML(ev), nil)
}

// SendUserConfirmation acknowledges the buyer's submission.
func (m *Mailer) SendUserConfirmation(ctx context.Context, ev *models.RequestSubmittedEvent) (string, error) {
	subject := "We received your inventory request"
	return m.send(ctx, ev.UserEmail, subject, userConfirmationHTML(ev), nil)
}

// SendStatusUpdate tells the buyer their request was approved or rejected.
func (m *Mailer) SendStatusUpdate(ctx context.Context, ev *models.StatusChangedEvent) (string, error) {
	subject := fmt.Sprintf("Your inventory request was %s", ev.Status)
	return m.send(ctx, ev.UserEmail, subject, statusUpdateHTML(ev), nil)
}

// SendInvoice mails the rendered invoice PDF to the buyer.
func (m *Mailer) SendInvoice(ctx context.Context, req *models.InventoryRequest, pdf []byte) (string, error) {
	subject := fmt.Sprintf("Invoice %s for your inventory request", req.InvoiceNumber)
	att := []*resend.Attachment{{
		Filename: fmt.Sprintf("%s.pdf", req.InvoiceNumber),
		Content:  pdf,
	}}
	return m.send(ctx, req.UserEmail, subject, invoiceHTML(req), att)
}

func itemRows(items []models.LineItem, symbol string) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b,
			"<tr><td>%s</td><td>%s</td><td align=\"right\">%d</td><td align=\"right\">%s%s</td></tr>",
			html.EscapeString(it.ProductID),
			html.EscapeString(it.ProductName),
			it.Quantity,
			html.EscapeString(symbol),
			it.TotalPrice.StringFixed(2))
	}
	return b.String()
}

func adminNewRequestHTML(ev *models.RequestSubmittedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>New inventory request</h2>")
	fmt.Fprintf(&b, "<p><strong>%s</strong> (%s) submitted a request.</p>",
		html.EscapeString(ev.UserName), html.EscapeString(ev.UserEmail))
	fmt.Fprintf(&b, "<table border=\"0\" cellpadding=\"4\"><tr><th>Code</th><th>Item</th><th>Qty</th><th>Total</th></tr>%s</table>",
		itemRows(ev.Items, ev.Symbol))
	fmt.Fprintf(&b, "<p>Total: <strong>%s%s %s</strong></p>",
		html.EscapeString(ev.Symbol), html.EscapeString(ev.TotalAmount), html.EscapeString(ev.Currency))
	if ev.UserNotes != "" {
		fmt.Fprintf(&b, "<p>Notes: %s</p>", html.EscapeString(ev.UserNotes))
	}
	return b.String()
}

func userConfirmationHTML(ev *models.RequestSubmittedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thanks, %s!</h2>", html.EscapeString(ev.UserName))
	fmt.Fprintf(&b, "<p>Your inventory request has been received and is pending review.</p>")
	fmt.Fprintf(&b, "<table border=\"0\" cellpadding=\"4\"><tr><th>Code</th><th>Item</th><th>Qty</th><th>Total</th></tr>%s</table>",
		itemRows(ev.Items, ev.Symbol))
	fmt.Fprintf(&b, "<p>Total: <strong>%s%s %s</strong></p>",
		html.EscapeString(ev.Symbol), html.EscapeString(ev.TotalAmount), html.EscapeString(ev.Currency))
	fmt.Fprintf(&b, "<p>We will email you once it has been reviewed.</p>")
	return b.String()
}

func statusUpdateHTML(ev *models.StatusChangedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Hello %s,</h2>", html.EscapeString(ev.UserName))
	fmt.Fprintf(&b, "<p>Your inventory request has been <strong>%s</strong>.</p>",
		html.EscapeString(ev.Status))
	if ev.AdminComment != "" {
		fmt.Fprintf(&b, "<p>Comment from our team: %s</p>", html.EscapeString(ev.AdminComment))
	}
	if ev.Status == models.StatusApproved {
		fmt.Fprintf(&b, "<p>Your invoice will follow shortly.</p>")
	}
	return b.String()
}

func invoiceHTML(req *models.InventoryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Hello %s,</h2>", html.EscapeString(req.UserName))
	fmt.Fprintf(&b, "<p>Please find attached invoice <strong>%s</strong> for your inventory request.</p>",
		html.EscapeString(req.InvoiceNumber))
	fmt.Fprintf(&b, "<p>Amount due: <strong>%s%s %s</strong></p>",
		html.EscapeString(req.CurrencySymbol), req.TotalAmount.StringFixed(2), html.EscapeString(req.Currency))
	if req.DueDate != nil {
		fmt.Fprintf(&b, "<p>Due date: %s</p>", req.DueDate.Format("January 2, 2006"))
	}
	fmt.Fprintf(&b, "<p>Thank you for your business!</p>")
	return b.String()
}
