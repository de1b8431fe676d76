package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role or account status for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrUnprocessable indicates a well-formed request that violates a business rule.
var ErrUnprocessable = errors.New("unprocessable request")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// BalanceError reports a leave-balance shortfall for a specific category.
// It carries the structured detail the API surfaces to the client.
type BalanceError struct {
	LeaveType string `json:"leave_type"`
	Remaining int    `json:"remaining"`
	Requested int    `json:"requested"`
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: %d days remaining, %d requested", e.LeaveType, e.Remaining, e.Requested)
}

func (e *BalanceError) Unwrap() error { return ErrValidation }

// OverlapError reports an existing pending/approved application covering the requested period.
type OverlapError struct {
	OverlappingID string `json:"overlapping_id"`
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("an application already covers this period (application %s)", e.OverlappingID)
}

func (e *OverlapError) Unwrap() error { return ErrConflict }
