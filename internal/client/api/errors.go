package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the server could not be reached at the
	// transport level (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers auth failures: bad credentials, a taken
	// username on signup, or an invalid/expired token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the server no longer has the requested story.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx API response. It unwraps to one of the sentinel
// errors above so callers can classify with errors.Is without looking
// at the status code.
type Error struct {
	Status  int
	Message string
	kind    error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func (e *Error) Unwrap() error {
	return e.kind
}

// newStatusError classifies a response status. authEndpoint widens the
// unauthorized mapping to every 4xx, since signup/login report taken
// usernames, unknown usernames (404) and malformed input as client
// errors. That widening takes precedence: ErrNotFound is reserved for
// missing stories.
func newStatusError(status int, message string, authEndpoint bool) *Error {
	e := &Error{Status: status, Message: message}
	switch {
	case authEndpoint && status >= 400 && status < 500:
		e.kind = ErrUnauthorized
	case status == http.StatusNotFound:
		e.kind = ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.kind = ErrUnauthorized
	}
	return e
}
