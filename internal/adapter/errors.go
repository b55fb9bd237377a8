package adapter

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies a failed request.
type ErrorKind string

const (
	KindOffline      ErrorKind = "offline"
	KindUnauthorized ErrorKind = "unauthorized"
	KindRateLimited  ErrorKind = "rate_limited"
	KindServerError  ErrorKind = "server_error"
	KindTransport    ErrorKind = "transport_error"
	KindDecoding     ErrorKind = "decoding_error"
	KindRejected     ErrorKind = "rejected"
	KindEncoding     ErrorKind = "encoding_error"
)

// Sentinels for errors.Is matching against a [*RequestError].
var (
	ErrOffline      = errors.New("network unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrServerError  = errors.New("server error")
	ErrTransport    = errors.New("transport error")
	ErrDecoding     = errors.New("decoding error")
	ErrRejected     = errors.New("request rejected")
	ErrEncoding     = errors.New("encoding error")
)

var kindSentinels = map[ErrorKind]error{
	KindOffline:      ErrOffline,
	KindUnauthorized: ErrUnauthorized,
	KindRateLimited:  ErrRateLimited,
	KindServerError:  ErrServerError,
	KindTransport:    ErrTransport,
	KindDecoding:     ErrDecoding,
	KindRejected:     ErrRejected,
	KindEncoding:     ErrEncoding,
}

// RequestError is the typed failure of an executor call.
type RequestError struct {
	Kind ErrorKind
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	// RetryAfter is the server's backoff hint for rate-limited responses.
	RetryAfter time.Duration
	// Message is the server-provided reason, if any.
	Message string
	// Err is the underlying cause (transport or codec error).
	Err error
}

func (e *RequestError) Error() string {
	msg := string(e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (http %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the kind's sentinel.
func (e *RequestError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Transient reports whether retrying the same request later may succeed.
func (e *RequestError) Transient() bool {
	switch e.Kind {
	case KindOffline, KindRateLimited, KindServerError, KindTransport:
		return true
	default:
		return false
	}
}

// Reason is a short human-readable description used in status messages.
func (e *RequestError) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindOffline:
		return "no internet connection"
	case KindUnauthorized:
		return "session expired, please log in again"
	case KindRateLimited:
		return "too many requests, please wait"
	case KindServerError:
		return "server error"
	case KindTransport:
		return "network error"
	case KindDecoding:
		return "unexpected response from server"
	case KindEncoding:
		return "request could not be encoded"
	default:
		return "request rejected"
	}
}

// AsRequestError extracts a [*RequestError] from err.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsTransient reports whether err is a transient [*RequestError]. Errors of
// any other type are treated as transient.
func IsTransient(err error) bool {
	if reqErr, ok := AsRequestError(err); ok {
		return reqErr.Transient()
	}
	return true
}
