package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is wrapped by every 401 so callers can send the user to LoginURL.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response, or one whose status the operation does not declare.
type APIError struct {
	Op      string
	Status  int
	Message string
	Field   string
	err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %d %s (%s)", e.Op, e.Status, msg, e.Field)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.Status, msg)
}

func (e *APIError) Unwrap() error { return e.err }

// IsUnauthorized reports whether err came from a 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
