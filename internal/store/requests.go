package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory-request-service/internal/models"
)

// ErrRequestNotFound is returned when no request matches the given id.
var ErrRequestNotFound = errors.New("request not found")

const requestColumns = `id, user_name, user_email, items, total_amount, currency,
	currency_symbol, status, COALESCE(invoice_number, '') AS invoice_number,
	due_date, COALESCE(user_notes, '') AS user_notes,
	COALESCE(admin_comment, '') AS admin_comment, created_at, updated_at`

// CreateRequest inserts a new request in pending status.
func (s *Store) CreateRequest(ctx context.Context, req *models.InventoryRequest) error {
	query := `
		INSERT INTO inventory_requests
			(id, user_name, user_email, items, total_amount, currency,
			 currency_symbol, status, user_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, query,
		req.ID, req.UserName, req.UserEmail, req.Items, req.TotalAmount,
		req.Currency, req.CurrencySymbol, req.Status, req.UserNotes, now)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

// GetRequestByID retrieves a single request.
func (s *Store) GetRequestByID(ctx context.Context, id string) (*models.InventoryRequest, error) {
	var req models.InventoryRequest
	err := s.db.GetContext(ctx, &req,
		"SELECT "+requestColumns+" FROM inventory_requests WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests retrieves all requests, newest first.
func (s *Store) ListRequests(ctx context.Context) ([]models.InventoryRequest, error) {
	var reqs []models.InventoryRequest
	err := s.db.SelectContext(ctx, &reqs,
		"SELECT "+requestColumns+" FROM inventory_requests ORDER BY created_at DESC")
	return reqs, err
}

// ListRequestsByStatus retrieves requests in a given status, newest first.
func (s *Store) ListRequestsByStatus(ctx context.Context, status string) ([]models.InventoryRequest, error) {
	var reqs []models.InventoryRequest
	err := s.db.SelectContext(ctx, &reqs,
		"SELECT "+requestColumns+" FROM inventory_requests WHERE status = $1 ORDER BY created_at DESC",
		status)
	return reqs, err
}

// UpdateStatus moves a request to a new status, recording the admin comment.
// The transition is guarded in SQL so a stale caller cannot overwrite a
// concurrent decision.
func (s *Store) UpdateStatus(ctx context.Context, id, from, to, adminComment string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE inventory_requests
		SET status = $1, admin_comment = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`,
		to, adminComment, id, from)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("request %s is no longer in status %s: %w", id, from, ErrRequestNotFound)
	}
	return nil
}

// SetInvoiceFields records the issued invoice number and due date and moves
// the request to completed. An empty admin comment leaves the stored
// comment untouched.
func (s *Store) SetInvoiceFields(ctx context.Context, id, invoiceNumber string, dueDate time.Time, adminComment string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE inventory_requests
		SET status = $1, invoice_number = $2, due_date = $3,
		    admin_comment = COALESCE(NULLIF($4, ''), admin_comment),
		    updated_at = NOW()
		WHERE id = $5 AND status = $6`,
		models.StatusCompleted, invoiceNumber, dueDate, adminComment, id, models.StatusApproved)
	if err != nil {
		return fmt.Errorf("failed to set invoice fields: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("request %s is not approved: %w", id, ErrRequestNotFound)
	}
	return nil
}

// StatusCounts returns the number of requests per status.
func (s *Store) StatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT status, COUNT(*) FROM inventory_requests GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{
		models.StatusPending:   0,
		models.StatusApproved:  0,
		models.StatusRejected:  0,
		models.StatusCompleted: 0,
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
