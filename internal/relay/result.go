package relay

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a relay failure.
type ErrorKind int

const (
	InvalidInput ErrorKind = iota
	UpstreamHTTPError
	UpstreamParseError
	TransportError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case UpstreamHTTPError:
		return "upstream_http_error"
	case UpstreamParseError:
		return "upstream_parse_error"
	case TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by the service.
type Error struct {
	Kind    ErrorKind
	Message string

	// Set for UpstreamHTTPError only.
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Result is either a success carrying Data or a failure carrying Err.
type Result[T any] struct {
	Data T
	Err  *Error
}

func Success[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func Failure[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

// IsKind reports whether err is a relay *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var relayErr *Error
	return errors.As(err, &relayErr) && relayErr.Kind == kind
}
