package ollama

import (
	"errors"
	"fmt"
)

// Kind classifies client errors.
type Kind int

const (
	// KindTransport covers connection failures, timeouts and non-2xx
	// responses from the service.
	KindTransport Kind = iota + 1

	// KindDecode covers malformed JSON, whether in a complete response body,
	// in a single streamed line, or as an I/O failure while framing lines.
	KindDecode
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the error type returned by this package.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// HTTPStatus is the response status for non-2xx transport errors, 0
	// otherwise.
	HTTPStatus int

	// Message describes the failure.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ollama: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("ollama: %s", e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether this is a transport error.
func (e *Error) IsTransport() bool {
	return e.Kind == KindTransport
}

// IsDecode reports whether this is a decode error.
func (e *Error) IsDecode() bool {
	return e.Kind == KindDecode
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := ollama.AsError(err); ok && e.IsTransport() {
//	    // service unreachable, not a protocol problem
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func transportError(msg string, err error) *Error {
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}

func statusError(status int, body string) *Error {
	return &Error{
		Kind:       KindTransport,
		HTTPStatus: status,
		Message:    fmt.Sprintf("service returned %d: %s", status, body),
	}
}

func decodeError(msg string, err error) *Error {
	return &Error{Kind: KindDecode, Message: msg, Err: err}
}
