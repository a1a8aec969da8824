package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a domain error that carries the HTTP status it should map to.
// The message is safe to return to clients; wrapped internal errors are not.
type AppError struct {
	Status  int
	Message string
	Err     error // optional underlying cause, never exposed to clients
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

// NewValidation creates a 400 error for missing or invalid input.
func NewValidation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewNotFound creates a 404 error for an absent entity.
func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewConflict creates a 409 error for operations that violate a domain rule,
// e.g. deleting a category that still owns products.
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// NewInternal wraps an unexpected error behind a generic client message.
func NewInternal(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether the error chain contains a 404 AppError.
func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == http.StatusNotFound
}
