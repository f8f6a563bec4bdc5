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

// ErrForbidden indicates that the acting role is not permitted to perform the operation.
var ErrForbidden = errors.New("operation forbidden for role")

// ErrInvalidTransition indicates a status machine violation (e.g. clearing an unclaimed check).
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrNoActiveCheckbook indicates the bank account has no active checkbook to issue from.
var ErrNoActiveCheckbook = errors.New("no active checkbook for bank account")

// ErrSeriesExhausted indicates the active checkbook has no numbers left in its series.
var ErrSeriesExhausted = errors.New("checkbook series exhausted")

// ErrConflict indicates a lost race on an atomic update; the caller should retry
// the whole operation rather than partially apply it.
var ErrConflict = errors.New("concurrent modification conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with an HTTP-ish code and a human message.
// Repositories return these for infrastructure failures.
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

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
