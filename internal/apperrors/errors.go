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

// ErrConflict indicates that the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("resource state conflict")

// ErrPeriodLocked indicates that the entry date falls inside a finalized daily
// collection period. Callers must post an adjustment entry in an open period
// instead of backdating.
var ErrPeriodLocked = errors.New("collection period is finalized")

// ErrDuplicateSequence indicates a sequence number collision. The enclosing
// transaction has already failed at this point, so the caller retries the
// whole posting rather than re-requesting a number mid-transaction.
var ErrDuplicateSequence = errors.New("duplicate sequence number")

// ErrConsolidation indicates that a Main Account voucher could not be created
// for a committed fund movement. It must never be swallowed; the enclosing
// transaction aborts, or the reconciliation sweep repairs the gap.
var ErrConsolidation = errors.New("main account consolidation failed")

// ErrInternal indicates an unexpected internal fault.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the underlying error.
// Repositories use it for infrastructure faults that should not leak SQL detail.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
