package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inventory-request-service/internal/broker"
	"inventory-request-service/internal/currency"
	"inventory-request-service/internal/distributor"
	"inventory-request-service/internal/invoice"
	"inventory-request-service/internal/mailer"
	"inventory-request-service/internal/models"
	"inventory-request-service/internal/order"
	"inventory-request-service/internal/redisclient"
	"inventory-request-service/internal/storage"
	"inventory-request-service/internal/store"
	"inventory-request-service/internal/util"
)

const (
	adminLockTTL  = 30 * time.Second
	submissionTTL = 24 * time.Hour
)

// RequestService handles the inventory request lifecycle: submission,
// approval decisions, and invoice generation for approved requests.
type RequestService struct {
	store          *store.Store
	redis          *redisclient.Client
	eventPublisher *broker.EventPublisher
	renderer       *invoice.Renderer
	mail           *mailer.Mailer
	storage        *storage.Client
	invoiceDueDays int
	logger         *zap.Logger
}

// NewRequestService creates a new request service
func NewRequestService(
	st *store.Store,
	redis *redisclient.Client,
	eventPublisher *broker.EventPublisher,
	renderer *invoice.Renderer,
	mail *mailer.Mailer,
	stor *storage.Client,
	invoiceDueDays int,
) *RequestService {
	return &RequestService{
		store:          st,
		redis:          redis,
		eventPublisher: eventPublisher,
		renderer:       renderer,
		mail:           mail,
		storage:        stor,
		invoiceDueDays: invoiceDueDays,
		logger:         util.GetLogger(),
	}
}

// SubmitRequest represents a buyer's cart submission
type SubmitRequest struct {
	UserName      string         `json:"user_name" binding:"required"`
	UserEmail     string         `json:"user_email" binding:"required,email"`
	Country       string         `json:"country" binding:"required"`
	Items         map[string]int `json:"items" binding:"required"`
	UserNotes     string         `json:"user_notes,omitempty"`
	SubmissionKey string         `json:"submission_key,omitempty"`
}

// SubmitResponse represents the response after submitting a request
type SubmitResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

// Submit validates a cart, prices it in the buyer's currency and persists a
// pending request. A client-supplied submission key makes retries
// idempotent: a duplicate submit returns the original request id.
func (s *RequestService) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	ctx, span := util.StartSpan(ctx, "RequestService.Submit")
	defer span.End()

	country, ok := currency.CountryByName(req.Country)
	if !ok {
		util.RequestsRejectedValidation.WithLabelValues("unknown_country").Inc()
		return nil, fmt.Errorf("%w: unknown country %q", ErrValidation, req.Country)
	}

	items, total, err := order.Build(req.Items, country)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			util.RequestsRejectedValidation.WithLabelValues("empty_cart").Inc()
		case errors.Is(err, order.ErrUnsupportedCurrency):
			util.RequestsRejectedValidation.WithLabelValues("unsupported_currency").Inc()
		default:
			util.RequestsRejectedValidation.WithLabelValues("invalid_items").Inc()
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	requestID := uuid.New().String()

	if req.SubmissionKey != "" && s.redis != nil {
		claimed, err := s.redis.ClaimSubmission(ctx, req.SubmissionKey, requestID, submissionTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check submission key: %w", err)
		}
		if !claimed {
			existingID, err := s.redis.GetSubmission(ctx, req.SubmissionKey)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve duplicate submission: %w", err)
			}
			s.logger.Info("duplicate submission detected",
				zap.String("submission_key", req.SubmissionKey),
				zap.String("request_id", existingID))
			existing, err := s.store.GetRequestByID(ctx, existingID)
			if err != nil {
				return nil, err
			}
			return &SubmitResponse{RequestID: existing.ID, Status: existing.Status}, nil
		}
	}

	request := &models.InventoryRequest{
		ID:             requestID,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		Items:          items,
		TotalAmount:    total,
		Currency:       country.Currency,
		CurrencySymbol: country.Symbol,
		Status:         models.StatusPending,
		UserNotes:      req.UserNotes,
	}

	if err := s.store.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	util.RequestsSubmittedTotal.Inc()
	s.logger.Info("request submitted",
		zap.String("request_id", request.ID),
		zap.String("currency", request.Currency),
		zap.Int("items", len(items)))

	event := &models.RequestSubmittedEvent{
		BaseEvent:   newBaseEvent(models.EventTypeRequestSubmitted),
		RequestID:   request.ID,
		UserName:    request.UserName,
		UserEmail:   request.UserEmail,
		Items:       items,
		TotalAmount: total.StringFixed(2),
		Currency:    request.Currency,
		Symbol:      request.CurrencySymbol,
		UserNotes:   request.UserNotes,
	}
	if err := s.eventPublisher.PublishRequestSubmitted(ctx, event); err != nil {
		// Notifications are best-effort; the request is already durable.
		s.logger.Error("failed to publish RequestSubmitted event", zap.Error(err))
	}

	return &SubmitResponse{RequestID: request.ID, Status: request.Status}, nil
}

// Approve moves a pending request to approved.
func (s *RequestService) Approve(ctx context.Context, requestID, adminComment string) (*models.InventoryRequest, error) {
	ctx, span := util.StartSpan(ctx, "RequestService.Approve")
	defer span.End()

	req, err := s.decide(ctx, requestID, models.StatusApproved, adminComment)
	if err != nil {
		return nil, err
	}
	util.RequestsApprovedTotal.Inc()
	return req, nil
}

// Reject moves a pending request to rejected.
func (s *RequestService) Reject(ctx context.Context, requestID, adminComment string) (*models.InventoryRequest, error) {
	ctx, span := util.StartSpan(ctx, "RequestService.Reject")
	defer span.End()

	req, err := s.decide(ctx, requestID, models.StatusRejected, adminComment)
	if err != nil {
		return nil, err
	}
	util.RequestsRejectedTotal.Inc()
	return req, nil
}

// decide applies an admin decision under the per-request lock. The status
// change is persisted first; the notification event is best-effort.
func (s *RequestService) decide(ctx context.Context, requestID, target, adminComment string) (*models.InventoryRequest, error) {
	unlock, err := s.lockRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, err := s.store.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(req.Status, target) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, req.Status, target)
	}

	if err := s.store.UpdateStatus(ctx, requestID, req.Status, target, adminComment); err != nil {
		return nil, err
	}
	req.Status = target
	req.AdminComment = adminComment

	s.logger.Info("request decided",
		zap.String("request_id", requestID),
		zap.String("status", target))

	event := &models.StatusChangedEvent{
		BaseEvent:    newBaseEvent(models.EventTypeStatusChanged),
		RequestID:    req.ID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		Status:       target,
		AdminComment: adminComment,
	}
	if err := s.eventPublisher.PublishStatusChanged(ctx, event); err != nil {
		s.logger.Error("failed to publish StatusChanged event", zap.Error(err))
	}

	return req, nil
}

// GenerateInvoiceResult reports the outcome of invoice generation. EmailSent
// is false on partial success, where the invoice exists in storage but the
// mail could not be delivered.
type GenerateInvoiceResult struct {
	Request    *models.InventoryRequest `json:"request"`
	StorageKey string                   `json:"storage_key"`
	EmailSent  bool                     `json:"email_sent"`
}

// InvoiceOptions carries optional admin overrides for invoice generation.
type InvoiceOptions struct {
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	AdminComment  string     `json:"admin_comment,omitempty"`
}

// GenerateInvoice issues the invoice for an approved request: it assigns a
// number and due date, marks the request completed, renders the PDF, uploads
// it and mails it to the buyer. The completed status is persisted before the
// document work, so a later step failure leaves a retryable completed
// request rather than a lost invoice; retries reuse the stored number and
// overwrite the stored object.
func (s *RequestService) GenerateInvoice(ctx context.Context, requestID string, opts *InvoiceOptions) (*GenerateInvoiceResult, error) {
	ctx, span := util.StartSpan(ctx, "RequestService.GenerateInvoice")
	defer span.End()

	unlock, err := s.lockRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, err := s.store.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &InvoiceOptions{}
	}

	switch {
	case req.Status == models.StatusApproved:
		num := opts.InvoiceNumber
		if num == "" {
			num = invoiceNumberFor(req)
		}
		due := time.Now().UTC().AddDate(0, 0, s.invoiceDueDays)
		if opts.DueDate != nil {
			due = *opts.DueDate
		}
		if err := s.store.SetInvoiceFields(ctx, req.ID, num, due, opts.AdminComment); err != nil {
			util.InvoiceStepFailures.WithLabelValues(StepPersist).Inc()
			return nil, &StepError{Step: StepPersist, Err: err}
		}
		req.Status = models.StatusCompleted
		req.InvoiceNumber = num
		req.DueDate = &due
		if opts.AdminComment != "" {
			req.AdminComment = opts.AdminComment
		}

	case req.Status == models.StatusCompleted && req.InvoiceNumber != "":
		// Regeneration: reuse the issued number, the upload overwrites.
		s.logger.Info("regenerating invoice",
			zap.String("request_id", req.ID),
			zap.String("invoice_number", req.InvoiceNumber))

	default:
		return nil, fmt.Errorf("%w: cannot invoice request in status %s", ErrInvalidTransition, req.Status)
	}

	dist := distributor.ResolveForItems(req.Items)
	if tags := distributor.Distinct(req.Items); len(tags) > 1 {
		s.logger.Warn("request spans multiple distributors, using first match",
			zap.String("request_id", req.ID),
			zap.Strings("distributors", tags))
	}
	if dist == nil {
		s.logger.Warn("no distributor matched, falling back to seller addresses",
			zap.String("request_id", req.ID))
	}

	start := time.Now()
	pdf, err := s.renderer.Render(req, dist)
	util.InvoiceRenderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		util.InvoiceStepFailures.WithLabelValues(StepRender).Inc()
		return nil, &StepError{Step: StepRender, Err: err}
	}

	key := storage.ObjectKey(req.InvoiceNumber)
	if err := s.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			s.logger.Warn("invoice storage disabled, skipping upload",
				zap.String("invoice_number", req.InvoiceNumber))
		} else {
			util.InvoiceStepFailures.WithLabelValues(StepUpload).Inc()
			return nil, &StepError{Step: StepUpload, Err: err}
		}
	}

	emailSent := false
	if _, err := s.mail.SendInvoice(ctx, req, pdf); err != nil {
		// Partial success: the invoice exists, only delivery failed.
		util.InvoiceStepFailures.WithLabelValues(StepEmail).Inc()
		util.NotificationEmailFailures.WithLabelValues("invoice").Inc()
		s.logger.Error("failed to email invoice",
			zap.String("request_id", req.ID),
			zap.String("invoice_number", req.InvoiceNumber),
			zap.Error(err))
	} else {
		emailSent = true
		util.NotificationEmailsTotal.WithLabelValues("invoice").Inc()
	}

	util.InvoicesGeneratedTotal.Inc()
	s.logger.Info("invoice generated",
		zap.String("request_id", req.ID),
		zap.String("invoice_number", req.InvoiceNumber),
		zap.String("storage_key", key),
		zap.Bool("email_sent", emailSent))

	event := &models.InvoiceIssuedEvent{
		BaseEvent:     newBaseEvent(models.EventTypeInvoiceIssued),
		RequestID:     req.ID,
		InvoiceNumber: req.InvoiceNumber,
		StorageKey:    key,
		EmailSent:     emailSent,
	}
	if err := s.eventPublisher.PublishInvoiceIssued(ctx, event); err != nil {
		s.logger.Error("failed to publish InvoiceIssued event", zap.Error(err))
	}

	return &GenerateInvoiceResult{Request: req, StorageKey: key, EmailSent: emailSent}, nil
}

// GetRequest retrieves a request by ID.
func (s *RequestService) GetRequest(ctx context.Context, requestID string) (*models.InventoryRequest, error) {
	return s.store.GetRequestByID(ctx, requestID)
}

// ListRequests retrieves requests, optionally filtered by status.
func (s *RequestService) ListRequests(ctx context.Context, status string) ([]models.InventoryRequest, error) {
	if status == "" {
		return s.store.ListRequests(ctx)
	}
	return s.store.ListRequestsByStatus(ctx, status)
}

// StatusCounts returns the number of requests per status.
func (s *RequestService) StatusCounts(ctx context.Context) (map[string]int, error) {
	return s.store.StatusCounts(ctx)
}

// GetInvoicePDF fetches a stored invoice document by its invoice number.
func (s *RequestService) GetInvoicePDF(ctx context.Context, invoiceNumber string) ([]byte, error) {
	return s.storage.Download(ctx, storage.ObjectKey(invoiceNumber))
}

// lockRequest takes the per-request admin lock, so two admins cannot race a
// decision or invoice run on the same request.
func (s *RequestService) lockRequest(ctx context.Context, requestID string) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}
	acquired, err := s.redis.AcquireLock(ctx, "request:"+requestID, adminLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire request lock: %w", err)
	}
	if !acquired {
		return nil, ErrActionInProgress
	}
	return func() {
		if err := s.redis.ReleaseLock(context.Background(), "request:"+requestID); err != nil {
			s.logger.Error("failed to release request lock",
				zap.String("request_id", requestID),
				zap.Error(err))
		}
	}, nil
}

// invoiceNumberFor derives a stable invoice number from the request, so a
// retried generation run cannot issue a second number for the same request.
func invoiceNumberFor(req *models.InventoryRequest) string {
	short := strings.ToUpper(strings.ReplaceAll(req.ID, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("INV-%d-%s", req.CreatedAt.Year(), short)
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
}
