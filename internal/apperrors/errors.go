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

// ErrConflict indicates the request clashes with the current state of a resource.
var ErrConflict = errors.New("conflict with current state")

// ErrReferentialIntegrity indicates a write referenced a row that does not exist
// (for example a ledger entry pointing at an unknown account).
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ErrInternal is used for failures the caller cannot fix.
var ErrInternal = errors.New("internal error")

// AppError carries a status-like code and a human message alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap lets errors.Is / errors.As see the wrapped sentinel.
func (e *AppError) Unwrap() error {
	return e.Err
}
