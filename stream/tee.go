package stream

import (
	"io"

	"github.com/pkg/errors"
)

// teeChunkSize is the size of the scratch region used when pulling from the
// source stream.
const teeChunkSize = 4096

// Tee wraps a source stream that may be single-pass and buffers everything
// read from it, so the same bytes can be consumed more than once. The tee
// itself reads like an independent view of the source from offset zero;
// further views are created with NewBranch.
//
// The entire source content is buffered in memory in the worst case. Neither
// the tee nor its branches are safe for concurrent use.
type Tee struct {
	source   Stream
	buf      []byte
	complete bool
	cursor   int64
}

var _ Stream = (*Tee)(nil)

// NewTee creates a tee stream over source. The tee takes ownership of
// source; the caller must not read from source afterwards.
func NewTee(source Stream) *Tee {
	return &Tee{source: source}
}

// IsTee reports whether s is a tee stream, so callers can branch an existing
// tee instead of wrapping it a second time.
func IsTee(s Stream) bool {
	_, ok := s.(*Tee)
	return ok
}

// Branch is an independent reader over the data buffered by its parent tee.
// Reading a branch does not move any other branch's cursor. A branch must
// not outlive its parent.
type Branch struct {
	parent *Tee
	cursor int64
}

var _ Stream = (*Branch)(nil)

// NewBranch creates a fresh view of the tee's source, starting at offset
// zero. Branches may be created at any point in the tee's lifetime.
func (t *Tee) NewBranch() *Branch {
	return &Branch{parent: t}
}

// fill pulls one chunk from the source into the shared buffer. Marks the
// source complete on EOF or a zero-byte read.
func (t *Tee) fill() error {
	scratch := make([]byte, teeChunkSize)
	n, err := t.source.Read(scratch)
	if n > 0 {
		t.buf = append(t.buf, scratch[:n]...)
	}
	if err == io.EOF || (n == 0 && err == nil) {
		t.complete = true
		return nil
	}
	return err
}

// drain pulls from the source until it is complete.
func (t *Tee) drain() error {
	for !t.complete {
		if err := t.fill(); err != nil {
			return err
		}
	}
	return nil
}

// readAt serves a read for the view with the given cursor.
func (t *Tee) readAt(cursor *int64, p []byte) (int, error) {
	for {
		if *cursor < int64(len(t.buf)) {
			n := copy(p, t.buf[*cursor:])
			*cursor += int64(n)
			return n, nil
		}
		if t.complete {
			return 0, io.EOF
		}
		if err := t.fill(); err != nil {
			return 0, err
		}
	}
}

// seekAt serves a seek for the view with the given cursor. Seeking relative
// to the end drains the source first so the end position is defined. Seeks
// past the buffered region pull from the source until the position is
// reachable.
func (t *Tee) seekAt(cursor *int64, offset int64, whence int) (int64, error) {
	if whence == io.SeekEnd && !t.complete {
		if err := t.drain(); err != nil {
			return 0, err
		}
	}
	abs, err := resolveSeek(offset, whence, *cursor, int64(len(t.buf)))
	if err != nil {
		return 0, err
	}
	for abs > int64(len(t.buf)) && !t.complete {
		if err := t.fill(); err != nil {
			return 0, err
		}
	}
	if abs > int64(len(t.buf)) {
		return 0, errors.Wrapf(ErrInvalidSeek, "position %d past end of source", abs)
	}
	*cursor = abs
	return abs, nil
}

// statusAt reports the status of the view with the given cursor. Views are
// always seekable within the buffered region; a known length is inherited
// from the source until the source has been fully drained.
func (t *Tee) statusAt(cursor int64) Status {
	known := t.complete
	if !known {
		_, known = t.source.Len()
	}
	return Status{
		Seekable:    true,
		KnownLength: known,
		AtEOF:       t.complete && cursor >= int64(len(t.buf)),
	}
}

// lengthOf returns the source length if known.
func (t *Tee) lengthOf() (int64, bool) {
	if t.complete {
		return int64(len(t.buf)), true
	}
	return t.source.Len()
}

// Read reads through the tee's own cursor.
func (t *Tee) Read(p []byte) (int, error) {
	return t.readAt(&t.cursor, p)
}

// Seek moves the tee's own cursor.
func (t *Tee) Seek(offset int64, whence int) (int64, error) {
	return t.seekAt(&t.cursor, offset, whence)
}

// Status reports the tee's capabilities and state.
func (t *Tee) Status() Status {
	return t.statusAt(t.cursor)
}

// Len returns the source length if known.
func (t *Tee) Len() (int64, bool) {
	return t.lengthOf()
}

// Read reads through the branch's cursor.
func (b *Branch) Read(p []byte) (int, error) {
	return b.parent.readAt(&b.cursor, p)
}

// Seek moves the branch's cursor.
func (b *Branch) Seek(offset int64, whence int) (int64, error) {
	return b.parent.seekAt(&b.cursor, offset, whence)
}

// Status reports the branch's capabilities and state.
func (b *Branch) Status() Status {
	return b.parent.statusAt(b.cursor)
}

// Len returns the source length if known.
func (b *Branch) Len() (int64, bool) {
	return b.parent.lengthOf()
}
