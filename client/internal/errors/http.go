package errors

import "fmt"

// NewValidationError reports a missing or malformed input for op.
func NewValidationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// NewUnauthorizedError reports that op needs an access token.
func NewUnauthorizedError(op string) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Op:      op,
		Message: "not authorized, authenticate by email first",
	}
}

// NewHTTPError creates a transport error for a non-2xx response.
func NewHTTPError(op string, statusCode int, body string) *Error {
	return &Error{
		Kind:       KindTransport,
		Op:         op,
		Message:    fmt.Sprintf("unexpected status %d", statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewNetworkError creates a transport error for failures below HTTP
// (DNS, connection refused, timeouts, canceled contexts).
func NewNetworkError(op string, err error) *Error {
	return &Error{
		Kind: KindTransport,
		Op:   op,
		Err:  fmt.Errorf("%s network error: %w", op, err),
	}
}

// NewDecodeError creates a transport error for a 2xx body that is not the
// JSON shape the endpoint promises.
func NewDecodeError(op string, statusCode int, body string, err error) *Error {
	return &Error{
		Kind:       KindTransport,
		Op:         op,
		Message:    "decode response: " + err.Error(),
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}
