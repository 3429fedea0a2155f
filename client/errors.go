package client

import (
	clienterrors "github.com/poh0/bird-wrapper/client/internal/errors"
)

// Error is the value every failed operation returns.
type Error = clienterrors.Error

// ErrorKind is the closed set of failure classes.
type ErrorKind = clienterrors.Kind

const (
	KindValidation   = clienterrors.KindValidation
	KindUnauthorized = clienterrors.KindUnauthorized
	KindTransport    = clienterrors.KindTransport
)

// Re-export sentinels so callers compare with errors.Is against a single symbol.
var (
	ErrValidation   = clienterrors.ErrValidation
	ErrUnauthorized = clienterrors.ErrUnauthorized
	ErrTransport    = clienterrors.ErrTransport
)

// KindOf returns the kind of err, or 0 if err did not come from this package.
func KindOf(err error) ErrorKind { return clienterrors.KindOf(err) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return clienterrors.IsValidation(err) }

// IsUnauthorized reports whether err is an UnauthorizedError.
func IsUnauthorized(err error) bool { return clienterrors.IsUnauthorized(err) }

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool { return clienterrors.IsTransport(err) }

func newValidationError(op, msg string) error { return clienterrors.NewValidationError(op, msg) }
func newUnauthorizedError(op string) error    { return clienterrors.NewUnauthorizedError(op) }

// outcomeLabel maps err to the metrics outcome label.
func outcomeLabel(err error) string {
	switch KindOf(err) {
	case 0:
		if err != nil {
			return "error"
		}
		return "ok"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "transport"
	}
}
