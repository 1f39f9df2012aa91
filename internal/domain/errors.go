package domain

import (
	"context"
	"errors"
	"net"
)

var (
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrNotSuperAdmin      = errors.New("access denied: superadmin role required")
	ErrSessionKeyNotFound = errors.New("session key not found")
	ErrPreferenceNotFound = errors.New("environment preference not found")
	ErrMissingID          = errors.New("id is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrProtectedUser      = errors.New("cannot delete super admin")
	ErrShareLinkMissing   = errors.New("share response carried no link")
)

// RequestError is returned for every failed API call. Status is zero when the
// request never produced an HTTP response.
type RequestError struct {
	Status     int
	StatusText string
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request failed because its deadline expired.
func (e *RequestError) Timeout() bool {
	if e == nil || e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ValidationError carries the message shown to the operator when form input is
// rejected before any request is sent.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(message string, err error) error {
	return &ValidationError{Message: message, Err: err}
}
