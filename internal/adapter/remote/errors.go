package remote

import (
	"errors"
	"fmt"
)

// Kind classifies a failed exchange with the remote economy service.
type Kind int

const (
	// KindBadRequest is a 400: the request itself was malformed.
	KindBadRequest Kind = iota + 1
	// KindNotFound is a 404: the resource is semantically absent.
	KindNotFound
	// KindTimeout covers HTTP 408 and client-side deadline expiry.
	KindTimeout
	// KindRateLimited is a 429.
	KindRateLimited
	// KindServerError is any 5xx.
	KindServerError
	// KindUnexpectedStatus is any status code outside the mapped set.
	KindUnexpectedStatus
	// KindMalformedResponse is a success status whose body could not be
	// decoded, or decoded to a null/empty entity.
	KindMalformedResponse
	// KindTransport is a non-timeout failure before any status arrived.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate limited"
	case KindServerError:
		return "server error"
	case KindUnexpectedStatus:
		return "unexpected status"
	case KindMalformedResponse:
		return "malformed response"
	case KindTransport:
		return "transport failure"
	default:
		return "unknown"
	}
}

// Error is the typed failure of one remote exchange.
type Error struct {
	Kind   Kind
	Op     string // e.g. "GET /balances/{id}"
	Status int    // HTTP status, 0 when the exchange never completed
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("remote %s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is transient: callers may retry
// these, and must not retry the rest.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindRateLimited, KindServerError, KindTransport:
		return true
	default:
		return false
	}
}

// IsNotFound reports whether err is a remote not-found failure. The
// get-or-create sequence branches on exactly this and nothing wider.
func IsNotFound(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindNotFound
}
