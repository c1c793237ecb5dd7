package errors

import (
	"net/http"
	"strings"
)

// FieldError attributes one violated constraint to a field path,
// e.g. "familyMembers[2].mobiles[0].value".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level violation of a candidate record
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error from field errors
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the field-level violations
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// Field returns the message for path and whether the path failed
func (e *ValidationError) Field(path string) (string, bool) {
	for _, f := range e.fields {
		if f.Field == path {
			return f.Message, true
		}
	}

	return "", false
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
