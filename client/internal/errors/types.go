// Package errors provides the closed error taxonomy for the client SDK.
// Every operation reports failures as a *Error so callers can branch on Kind
// instead of parsing messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies which class of failure an Error belongs to.
type Kind int

const (
	// KindValidation means a required input was missing or malformed.
	// No request was sent.
	KindValidation Kind = iota + 1

	// KindUnauthorized means the operation needs an access token that the
	// session does not hold. No request was sent.
	KindUnauthorized

	// KindTransport covers network failures, non-2xx responses and bodies
	// that could not be decoded.
	KindTransport
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindUnauthorized:
		return "UnauthorizedError"
	case KindTransport:
		return "TransportError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type returned by client operations.
type Error struct {
	Kind       Kind
	Op         string // operation name, e.g. "fetch profile"
	Message    string
	StatusCode int    // HTTP status code (0 when no response was received)
	Body       string // response body for debugging
	Err        error  // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s: HTTP %d: %s", e.Kind, e.Op, e.StatusCode, msg)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Op, msg)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. This lets the
// sentinel values below be matched with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Message == ""
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrTransport    = &Error{Kind: KindTransport}
)

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsValidation returns true if err is a validation failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsUnauthorized returns true if err reports a missing access token.
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// IsTransport returns true if err is a network or HTTP failure.
func IsTransport(err error) bool { return KindOf(err) == KindTransport }
