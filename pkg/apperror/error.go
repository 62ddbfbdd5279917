package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error represents an application error with HTTP status and error code.
// Clients only ever see the "detail" body produced by Body.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Fields     []FieldError
}

// FieldError describes one invalid request field, in the shape used by
// 422 responses: {"loc": ["body", "brandName"], "msg": "...", "type": "..."}.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// Body returns the JSON response body for the error.
// Field errors are reported as a detail array, everything else as a detail string.
func (e *Error) Body() map[string]any {
	if len(e.Fields) > 0 {
		return map[string]any{"detail": e.Fields}
	}
	return map[string]any{"detail": e.Message}
}

// ToEchoError converts the app error to an echo.HTTPError
func (e *Error) ToEchoError() *echo.HTTPError {
	return echo.NewHTTPError(e.HTTPStatus, e.Body())
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	cp := *e
	cp.Internal = err
	return &cp
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// WithFields returns a copy of the error carrying per-field validation failures
func (e *Error) WithFields(fields ...FieldError) *Error {
	cp := *e
	cp.Fields = append([]FieldError(nil), fields...)
	return &cp
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Common error definitions
var (
	ErrNotFound         = New(http.StatusNotFound, "not_found", "Not Found")
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "method_not_allowed", "Method Not Allowed")
	ErrBadRequest       = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation       = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")
	ErrRateLimited      = New(http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded. Please try again later.")

	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrDatabase = New(http.StatusInternalServerError, "database_error", "Database operation failed")
)

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewValidation creates a 422 error listing the offending body fields
func NewValidation(fields ...FieldError) *Error {
	return ErrValidation.WithFields(fields...)
}

// MissingField builds the field error reported for an absent required field
func MissingField(name string) FieldError {
	return FieldError{Loc: []string{"body", name}, Msg: "field required", Type: "value_error.missing"}
}

// InvalidField builds the field error reported for a field of the wrong type
func InvalidField(name, msg string) FieldError {
	return FieldError{Loc: []string{"body", name}, Msg: msg, Type: "type_error"}
}

// NewGenerationFailed reports a failed generation for the named operation,
// e.g. "Logo generation failed: <cause>".
func NewGenerationFailed(operation string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "generation_failed",
		Message:    fmt.Sprintf("%s generation failed: %v", operation, err),
		Internal:   err,
	}
}

// NewInternal creates an internal error with a message and optional wrapped error
func NewInternal(message string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}
