package service

import (
	"errors"
	"fmt"
)

// Invoice generation step names, used both in StepError and as metric labels.
const (
	StepPersist = "persist"
	StepRender  = "render"
	StepUpload  = "upload"
	StepEmail   = "email"
)

var (
	// ErrInvalidTransition is returned when a request is not in a status
	// that allows the attempted action.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrActionInProgress is returned when another admin action already
	// holds the per-request lock.
	ErrActionInProgress = errors.New("another action is in progress for this request")

	// ErrValidation wraps buyer input problems on submit.
	ErrValidation = errors.New("invalid request")
)

// StepError identifies which invoice generation step failed, so callers can
// tell a rendering bug from a storage outage or a mail failure.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("invoice generation failed at %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
