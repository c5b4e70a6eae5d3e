package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inventory-request-service/internal/models"
)

func TestSubmit_UnknownCountry(t *testing.T) {
	s := NewRequestService(nil, nil, nil, nil, nil, nil, 30)

	_, err := s.Submit(context.Background(), &SubmitRequest{
		UserName:  "Hana Tanaka",
		UserEmail: "hana@example.com",
		Country:   "Atlantis",
		Items:     map[string]int{"PKA0020KYSSDPKK": 2},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestSubmit_EmptyCart(t *testing.T) {
	s := NewRequestService(nil, nil, nil, nil, nil, nil, 30)

	_, err := s.Submit(context.Background(), &SubmitRequest{
		UserName:  "Hana Tanaka",
		UserEmail: "hana@example.com",
		Country:   "Japan",
		Items:     map[string]int{},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmit_UnknownProduct(t *testing.T) {
	s := NewRequestService(nil, nil, nil, nil, nil, nil, 30)

	_, err := s.Submit(context.Background(), &SubmitRequest{
		UserName:  "Hana Tanaka",
		UserEmail: "hana@example.com",
		Country:   "Japan",
		Items:     map[string]int{"NO-SUCH-PRODUCT": 1},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceNumberFor_Stable(t *testing.T) {
	req := &models.InventoryRequest{
		ID:        "7f9c24e5-1a2b-4c3d-8e9f-0a1b2c3d4e5f",
		CreatedAt: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	first := invoiceNumberFor(req)
	second := invoiceNumberFor(req)
	assert.Equal(t, first, second)
	assert.Equal(t, "INV-2026-7F9C24E5", first)
}

func TestStepError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StepError{Step: StepUpload, Err: cause}

	assert.Contains(t, err.Error(), "upload")
	assert.ErrorIs(t, err, cause)

	var stepErr *StepError
	assert.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepUpload, stepErr.Step)
}
