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

// ErrConversionUnavailable indicates that neither a direct nor an inverse
// exchange rate exists for the requested currency pair.
var ErrConversionUnavailable = errors.New("conversion unavailable")

// ErrStore indicates a failure in the underlying record store (query or write).
var ErrStore = errors.New("store error")

// AppError carries a status code and an optional cause alongside the message.
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

// NewAppError creates an AppError wrapping ErrStore so callers can detect
// store-level failures with errors.Is.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: fmt.Errorf("%w: %w", ErrStore, err)}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
