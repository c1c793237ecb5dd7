package errors

import (
	"net/http"

	"clientverse/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches another BaseError with the same business code, so sentinels
// keep matching after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Client-related errors
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Client not found",
		"",
	)

	// AI flow errors
	ErrInvalidClientData = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid client data format",
		"",
	)

	ErrModelUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"MODEL_UNAVAILABLE",
		"The language model is not configured",
		"",
	)

	// Authentication-related errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StorageOperation names the direction of a failed storage call.
type StorageOperation string

const (
	StorageRead  StorageOperation = "read"
	StorageWrite StorageOperation = "write"
)

// StorageError represents a transport or permission failure of the document store
type StorageError struct {
	op      StorageOperation
	err     error
	details string
}

// NewWriteError creates a storage error for a failed create, update or delete
func NewWriteError(err error, details string) AppError {
	return &StorageError{op: StorageWrite, err: err, details: details}
}

// NewReadError creates a storage error for a failed subscription or read
func NewReadError(err error, details string) AppError {
	return &StorageError{op: StorageRead, err: err, details: details}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrapf(e.err, "storage %s failed", e.op).Error()
}

// Unwrap exposes the backend error
func (e *StorageError) Unwrap() error {
	return e.err
}

// Operation reports whether the read or the write path failed
func (e *StorageError) Operation() StorageOperation {
	return e.op
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	if e.op == StorageRead {
		return "STORAGE_READ_FAILED"
	}

	return "STORAGE_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	if e.op == StorageRead {
		return "Failed to load clients"
	}

	return "Failed to save client"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// UpstreamError represents a failed model call or an unexpected model response
type UpstreamError struct {
	err     error
	details string
}

// NewUpstreamError creates an upstream error
func NewUpstreamError(err error, details string) AppError {
	return &UpstreamError{err: err, details: details}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, "model call failed").Error()
}

// Unwrap exposes the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "The AI service could not complete the request"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.details
}
