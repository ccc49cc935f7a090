// Package stream provides the input stream abstractions used when signing
// request bodies: a seekable cursor-backed stream and a tee stream that
// adapts a single-pass source for repeated reads.
package stream

import (
	"io"

	"github.com/pkg/errors"
)

// ErrInvalidSeek is returned when a seek resolves to a position outside the
// stream.
var ErrInvalidSeek = errors.New("stream: seek position out of range")

// ErrNotSeekable is returned when a seek is requested on a source that does
// not support it.
var ErrNotSeekable = errors.New("stream: source is not seekable")

// Status describes the capabilities and state of a stream.
type Status struct {
	// Seekable reports whether Seek may be called.
	Seekable bool

	// KnownLength reports whether Len returns a valid length.
	KnownLength bool

	// AtEOF reports whether the next Read returns io.EOF.
	AtEOF bool
}

// Stream is a forward-reading input stream. Concrete implementations are the
// cursor-backed stream, the tee stream and its branches. Implementations are
// not safe for concurrent use; callers serialize access.
type Stream interface {
	io.Reader
	io.Seeker

	// Status returns the stream's capabilities and current state.
	Status() Status

	// Len returns the total stream length in bytes, and whether that length
	// is known.
	Len() (int64, bool)
}

// resolveSeek computes the absolute position for an offset/whence pair
// against the current position and stream end. The end argument is only
// consulted for io.SeekEnd.
func resolveSeek(offset int64, whence int, current, end int64) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = current + offset
	case io.SeekEnd:
		abs = end + offset
	default:
		return 0, errors.Wrapf(ErrInvalidSeek, "whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.Wrapf(ErrInvalidSeek, "position %d", abs)
	}
	return abs, nil
}
