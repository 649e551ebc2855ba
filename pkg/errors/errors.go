// Package errors defines custom error types and error handling utilities for
// the HealthPredict service. Errors carry an API error code and an HTTP status
// so handlers can render them without switching on sentinel values.
package errors

import (
	"errors"
	"net/http"

	"github.com/healthpredict/healthpredict/pkg/constants"
)

// ================================================================================
// Base Error Interface
// ================================================================================

// AppError represents a structured error with additional metadata
type AppError interface {
	error

	// Code returns the API error code
	Code() constants.ErrorCode

	// HTTPStatus returns the HTTP status code
	HTTPStatus() int

	// Description returns a human-readable description
	Description() string

	// Unwrap returns the underlying error for error chain support
	Unwrap() error

	// WithCause adds a cause error to the error chain
	WithCause(cause error) AppError

	// WithDetails attaches per-field validation details
	WithDetails(details map[string]string) AppError

	// Details returns attached per-field details, may be nil
	Details() map[string]string
}

// ================================================================================
// Base Error Implementation
// ================================================================================

type baseError struct {
	code        constants.ErrorCode
	httpStatus  int
	description string
	message     string
	cause       error
	details     map[string]string
}

// Error implements the error interface
func (e *baseError) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.description
}

// Code returns the API error code
func (e *baseError) Code() constants.ErrorCode {
	return e.code
}

// HTTPStatus returns the HTTP status code
func (e *baseError) HTTPStatus() int {
	return e.httpStatus
}

// Description returns the error description
func (e *baseError) Description() string {
	return e.description
}

// Unwrap returns the underlying cause error
func (e *baseError) Unwrap() error {
	return e.cause
}

// WithCause adds a cause error to the error chain
func (e *baseError) WithCause(cause error) AppError {
	e.cause = cause
	return e
}

// WithDetails attaches per-field validation details
func (e *baseError) WithDetails(details map[string]string) AppError {
	e.details = details
	return e
}

// Details returns attached per-field details
func (e *baseError) Details() map[string]string {
	return e.details
}

// ================================================================================
// Error Constructor
// ================================================================================

// NewError creates a new AppError with the specified parameters
func NewError(code constants.ErrorCode, httpStatus int, description string, message string) AppError {
	return &baseError{
		code:        code,
		httpStatus:  httpStatus,
		description: description,
		message:     message,
	}
}

// ================================================================================
// Predefined Error Constructors
// ================================================================================

// ErrValidation creates a validation_error for malformed or out-of-range input
func ErrValidation(message string) AppError {
	return NewError(
		constants.ErrCodeValidation,
		http.StatusBadRequest,
		"The request is missing a required field or includes a field value outside its permitted range.",
		message,
	)
}

// ErrUnknownCategoryValue creates an unknown_category_value error for a
// categorical field value that has no entry in its encode table.
func ErrUnknownCategoryValue(field, value string) AppError {
	return NewError(
		constants.ErrCodeUnknownCategory,
		http.StatusBadRequest,
		"A categorical field carries a value with no defined encoding.",
		"unknown value "+value+" for field "+field,
	).WithDetails(map[string]string{field: value})
}

// ErrUnauthorized creates an unauthorized error
func ErrUnauthorized(message string) AppError {
	return NewError(
		constants.ErrCodeUnauthorized,
		http.StatusUnauthorized,
		"Authentication is required and has failed or has not been provided.",
		message,
	)
}

// ErrForbidden creates a forbidden error
func ErrForbidden(message string) AppError {
	return NewError(
		constants.ErrCodeForbidden,
		http.StatusForbidden,
		"The authenticated account does not have access to this resource.",
		message,
	)
}

// ErrNotFound creates a not_found error
func ErrNotFound(message string) AppError {
	return NewError(
		constants.ErrCodeNotFound,
		http.StatusNotFound,
		"The requested resource does not exist.",
		message,
	)
}

// ErrConflict creates a conflict error
func ErrConflict(message string) AppError {
	return NewError(
		constants.ErrCodeConflict,
		http.StatusConflict,
		"The request conflicts with existing state, e.g. a duplicate email.",
		message,
	)
}

// ErrScoring creates a scoring_error for classifier failures
func ErrScoring(message string) AppError {
	return NewError(
		constants.ErrCodeScoring,
		http.StatusInternalServerError,
		"The classifier could not produce a probability for the submitted features.",
		message,
	)
}

// ErrInternal creates an internal_error
func ErrInternal(message string) AppError {
	return NewError(
		constants.ErrCodeInternal,
		http.StatusInternalServerError,
		"The server encountered an unexpected condition that prevented it from fulfilling the request.",
		message,
	)
}

// ErrUnavailable creates a service_unavailable error
func ErrUnavailable(message string) AppError {
	return NewError(
		constants.ErrCodeUnavailable,
		http.StatusServiceUnavailable,
		"A required dependency is temporarily unreachable.",
		message,
	)
}

// ================================================================================
// Helpers
// ================================================================================

// AsAppError extracts an AppError from an error chain. The second return is
// false when the chain contains no AppError.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromError coerces any error into an AppError, wrapping unknown errors as
// internal_error so handlers never leak raw messages.
func FromError(err error) AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return ErrInternal("internal server error").WithCause(err)
}
