// Package errs contains sentinel errors and the API error classification
// used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common sentinels shared by the transport, session and CLI layers.
var (
	// ErrUnauthorized indicates the server rejected the request with 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested entity does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates bad input, caught either client-side before a
	// request is sent or reported by the server as 400/422.
	ErrValidation = errors.New("validation failed")

	// ErrServer indicates a 5xx response.
	ErrServer = errors.New("server error")

	// ErrNetwork indicates no response arrived at all (timeout, refused
	// connection, DNS failure).
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse indicates a 2xx response whose body did not match
	// the backend contract (e.g. login without a token).
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a classified transport failure. Err is one of the sentinels
// above so callers can match with errors.Is; Status is zero for network-level
// failures that never produced a response.
type APIError struct {
	Err      error
	Status   int
	Method   string
	Endpoint string
	Message  string // server-provided message, if any
	Field    string // offending field for validation errors
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d: %v", e.Method, e.Endpoint, e.Status, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// FromStatus classifies a non-2xx HTTP status into an APIError.
func FromStatus(method, endpoint string, status int, message string) *APIError {
	var err error
	switch {
	case status == http.StatusUnauthorized:
		err = ErrUnauthorized
	case status == http.StatusNotFound:
		err = ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		err = ErrValidation
	case status >= 500:
		err = ErrServer
	default:
		err = fmt.Errorf("unexpected status %d", status)
	}
	return &APIError{Err: err, Status: status, Method: method, Endpoint: endpoint, Message: message}
}

// Network wraps a transport failure that produced no response.
func Network(method, endpoint string, cause error) *APIError {
	return &APIError{Err: fmt.Errorf("%w: %v", ErrNetwork, cause), Method: method, Endpoint: endpoint}
}

// Validation reports a client-side validation failure on a single field.
// No request is sent when one of these is returned.
func Validation(field, message string) *APIError {
	return &APIError{Err: ErrValidation, Message: message, Field: field}
}

// Malformed reports a 2xx response whose body violates the backend contract.
func Malformed(method, endpoint, detail string) *APIError {
	return &APIError{Err: ErrMalformedResponse, Method: method, Endpoint: endpoint, Message: detail}
}

// IsUnauthorized reports whether err is a 401-classified failure.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsNetwork reports whether err never reached the server.
func IsNetwork(err error) bool { return errors.Is(err, ErrNetwork) }

// IsServer reports whether err is a 5xx-classified failure.
func IsServer(err error) bool { return errors.Is(err, ErrServer) }

// IsValidation reports whether err is a validation failure (either side).
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
