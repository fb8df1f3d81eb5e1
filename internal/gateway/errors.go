package gateway

import (
	"errors"
	"fmt"
)

// Common gateway errors
var (
	// ErrConnectivity is returned when the backend cannot be reached at the
	// network level (connection refused, DNS failure, timeout).
	ErrConnectivity = errors.New("backend is unreachable")

	// ErrValidation is returned when the backend rejects a request because a
	// required field is missing or malformed.
	ErrValidation = errors.New("invalid request data")

	// ErrNotFound is returned when the referenced record no longer exists
	// server-side.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned when the request lacks valid credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the gateway. Message is taken from the
// JSON error body when present, otherwise from the HTTP status line.
type APIError struct {
	// Op is the operation that failed (e.g., "ListBills", "CreateMember").
	Op string

	// StatusCode is the HTTP status returned by the gateway.
	StatusCode int

	// Message is the human-readable error description.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s failed (status %d): %s", e.Op, e.StatusCode, e.Message)
}

// Is maps HTTP status classes onto the gateway sentinel errors so callers can
// branch with errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrValidation:
		return e.StatusCode == 400 || e.StatusCode == 422
	case ErrUnauthorized:
		return e.StatusCode == 401 || e.StatusCode == 403
	}
	return false
}

// ConnectivityError is a transport-level failure: the request never produced an
// HTTP response. Its message tells the operator how to get the backend running,
// since that is almost always the fix.
type ConnectivityError struct {
	// URL is the endpoint that could not be reached.
	URL string

	// Err is the underlying network error.
	Err error
}

// Error implements the error interface.
func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot connect to the backend at %s: %v\n"+
		"Please make sure the backend server is running, then check its health endpoint", e.URL, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// Is matches ConnectivityError against the ErrConnectivity sentinel.
func (e *ConnectivityError) Is(target error) bool {
	return target == ErrConnectivity
}
