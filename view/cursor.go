package view

import (
	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/endian"
)

// Cursor is a moving position for single-pass traversal of a message. Each access through
// a cursor reads at the current position and advances past what it read, so a message can
// be walked without recomputing offsets. Copying a Cursor forks it.
type Cursor struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor returns a cursor positioned at b.
func NewCursor(b Bytes) Cursor {
	return Cursor{buf: b.buf, pos: b.off, engine: b.engine}
}

// Pos returns the absolute position inside the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of bytes between the cursor and the buffer end.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Bytes returns a view at the cursor position.
func (c *Cursor) Bytes() Bytes {
	return Bytes{buf: c.buf, off: c.pos, engine: c.engine}
}

// Advance moves the cursor n bytes forward. It reports a violation and stays put when that
// would pass the buffer end.
func (c *Cursor) Advance(n int) bool {
	if !check.Bounds("view.Cursor.Advance", c.pos, n, len(c.buf)) {
		return false
	}
	c.pos += n

	return true
}

// MoveTo positions the cursor at b, which must view the same buffer.
func (c *Cursor) MoveTo(b Bytes) {
	c.buf = b.buf
	c.pos = b.off
	c.engine = b.engine
}

// Clone returns an independent copy of the cursor.
func (c *Cursor) Clone() Cursor {
	return *c
}

// Read skips rel bytes, reads a T and leaves the cursor after it.
func Read[T Number](c *Cursor, rel int) T {
	size := SizeOf[T]()
	if !check.Bounds("view.Read", c.pos+rel, size, len(c.buf)) {
		return 0
	}

	v := Get[T](c.Bytes(), rel)
	c.pos += rel + size

	return v
}

// Write skips rel bytes, writes v and leaves the cursor after it.
func Write[T Number](c *Cursor, rel int, v T) {
	size := SizeOf[T]()
	if !check.Bounds("view.Write", c.pos+rel, size, len(c.buf)) {
		return
	}

	Put(c.Bytes(), rel, v)
	c.pos += rel + size
}
