package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeFetch      ErrorType = "fetch"
	ErrorTypeExtraction ErrorType = "extraction"
	ErrorTypeProvider   ErrorType = "provider"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Details: detail,
	}
}

// NewFetchError creates an error for a failed PDF download. The message
// carries the offending URL so handlers can surface it verbatim.
func NewFetchError(url string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeFetch,
		Message: fmt.Sprintf("Failed to download the PDF from URL: %s", url),
		Cause:   cause,
	}
}

// NewExtractionError creates an error for a PDF that could not be parsed
func NewExtractionError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeExtraction,
		Message: message,
		Cause:   cause,
	}
}

// NewProviderError creates an error for a failed generative model call.
// All provider-level failures are classified uniformly; the retry policy
// does not distinguish transient from permanent ones.
func NewProviderError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeProvider,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Message returns the user-facing message for an error. AppErrors expose
// their message without the type prefix; anything else is passed through.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
