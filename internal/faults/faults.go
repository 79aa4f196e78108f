// Package faults carries the error taxonomy shared by the backend and
// completion-service clients: one explicit kind per failure class instead of
// chains of broad exception handling. Terminal domain outcomes (no current
// plan, report already submitted) are NOT faults; those are sentinel errors
// owned by the clients themselves.
package faults

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type Kind int

const (
	// KindRequest covers transport and HTTP failures, including non-2xx
	// statuses that are not special-cased by the caller.
	KindRequest Kind = iota + 1
	// KindTimeout means a network call exceeded its deadline.
	KindTimeout
	// KindParse means a response body could not be parsed.
	KindParse
	// KindSchema means a parsed body failed report schema validation.
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindTimeout:
		return "timeout"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind   Kind
	Op     string
	Status int // HTTP status, when there is one
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: %s [status %d]: %s", e.Op, e.Kind, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s [status %d]", e.Op, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func NewStatus(kind Kind, op string, status int) *Error {
	return &Error{Kind: kind, Op: op, Status: status}
}

// FromTransport classifies an outbound request error: deadline and network
// timeouts become KindTimeout, everything else KindRequest.
func FromTransport(op string, err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return New(KindTimeout, op, err)
	}
	return New(KindRequest, op, err)
}

// KindOf returns the kind of err, or 0 when err carries no kind.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
