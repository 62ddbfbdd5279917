// Package errors provides the request error taxonomy of the Lotaya API client.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies why a request failed.
type Kind int

const (
	// KindNetwork covers connection failures and timeouts; no response was read.
	KindNetwork Kind = iota
	// KindServer is a non-2xx response whose body carried a string "detail".
	KindServer
	// KindUnreported is a non-2xx response without a usable detail, or any
	// response whose body could not be parsed as a JSON object.
	KindUnreported
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "unreported"
	}
}

// Error is returned by every client call that did not produce a usable payload.
type Error struct {
	Kind       Kind
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindServer:
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Detail)
	default:
		if e.Err != nil {
			return fmt.Sprintf("[%d] unreported error: %v", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("[%d] unreported error", e.StatusCode)
	}
}

// Unwrap returns the underlying transport or decode error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Network wraps a transport failure.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// Malformed reports a response body that is not a JSON object.
func Malformed(status int, err error) *Error {
	return &Error{Kind: KindUnreported, StatusCode: status, Err: err}
}

// ParseErrorResponse classifies a non-2xx response body.
// Only a string "detail" is treated as server-reported; structured details such
// as validation arrays fall back to KindUnreported.
func ParseErrorResponse(status int, body []byte) *Error {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return &Error{Kind: KindUnreported, StatusCode: status, Err: fmt.Errorf("decode error body: %w", err)}
	}

	if detail, ok := payload["detail"].(string); ok && detail != "" {
		return &Error{Kind: KindServer, StatusCode: status, Detail: detail}
	}

	return &Error{Kind: KindUnreported, StatusCode: status}
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Message returns the text to show a user for err: the server detail when one
// was reported, fallback otherwise.
func Message(err error, fallback string) string {
	if e, ok := From(err); ok && e.Kind == KindServer {
		return e.Detail
	}
	return fallback
}

// IsNetwork returns true if err is a transport failure.
func IsNetwork(err error) bool {
	e, ok := From(err)
	return ok && e.Kind == KindNetwork
}

// IsNotFound returns true if the error is a 404 Not Found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsRateLimited returns true if the server throttled the request.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsValidation returns true if the server rejected the request body.
func IsValidation(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	e, ok := From(err)
	return ok && e.StatusCode == status
}
