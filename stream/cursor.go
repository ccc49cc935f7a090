package stream

import "io"

// Cursor is a seekable Stream over an in-memory byte slice. The slice is not
// copied; it must not be mutated while the stream is in use.
type Cursor struct {
	data []byte
	pos  int64
}

var _ Stream = (*Cursor)(nil)

// NewCursor creates a Stream reading from data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Read copies bytes from the current position into p.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.pos >= int64(len(c.data)) {
		return 0, io.EOF
	}
	n := copy(p, c.data[c.pos:])
	c.pos += int64(n)
	return n, nil
}

// Seek moves the read position.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	abs, err := resolveSeek(offset, whence, c.pos, int64(len(c.data)))
	if err != nil {
		return 0, err
	}
	c.pos = abs
	return abs, nil
}

// Status reports the cursor as seekable with a known length.
func (c *Cursor) Status() Status {
	return Status{
		Seekable:    true,
		KnownLength: true,
		AtEOF:       c.pos >= int64(len(c.data)),
	}
}

// Len returns the length of the underlying slice.
func (c *Cursor) Len() (int64, bool) {
	return int64(len(c.data)), true
}
