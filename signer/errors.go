package signer

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ochsenreither/go-sigv4/stream"
)

// ErrorKind classifies signing failures.
type ErrorKind int

const (
	// KindInvalidArgument indicates a missing or malformed signing input:
	// nil request, empty credentials, empty region or service, zero signing
	// instant, or a malformed pre-supplied payload hash.
	KindInvalidArgument ErrorKind = iota

	// KindBodyRead indicates a read from the body stream or its tee branch
	// failed.
	KindBodyRead

	// KindStreamNotSeekable indicates a stream operation required seeking a
	// source that refuses.
	KindStreamNotSeekable

	// KindInvalidSeek indicates a seek resolved to a position outside the
	// stream.
	KindInvalidSeek

	// KindInternalHash indicates the hash primitive reported failure. The
	// primitives are infallible in practice; this is surfaced defensively.
	KindInternalHash

	// KindEncoding indicates a header value contains bytes outside the
	// range SigV4 is defined for.
	KindEncoding
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindBodyRead:
		return "BodyReadFailure"
	case KindStreamNotSeekable:
		return "StreamNotSeekable"
	case KindInvalidSeek:
		return "InvalidSeek"
	case KindInternalHash:
		return "InternalHashFailure"
	case KindEncoding:
		return "EncodingError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a signing failure tagged with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sigv4: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates an Error of the given kind from a format string.
func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// wrapError creates an Error of the given kind around a cause.
func wrapError(kind ErrorKind, cause error, msg string) *Error {
	return &Error{Kind: kind, Err: errors.Wrap(cause, msg)}
}

// wrapStreamError classifies a failure from a body stream operation.
func wrapStreamError(cause error, msg string) *Error {
	kind := KindBodyRead
	switch {
	case errors.Is(cause, stream.ErrInvalidSeek):
		kind = KindInvalidSeek
	case errors.Is(cause, stream.ErrNotSeekable):
		kind = KindStreamNotSeekable
	}
	return wrapError(kind, cause, msg)
}

// KindOf returns the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
