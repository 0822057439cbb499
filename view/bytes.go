package view

import (
	"math"
	"unsafe"

	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/endian"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
)

// Number is the set of Go types that map onto SBE primitives. Char fields use uint8.
type Number interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Bytes is a position inside a caller-owned buffer. The end bound is always the end of the
// buffer, so every sub-view shares the same limit.
type Bytes struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

// NewBytes returns a view at the start of buf. A nil engine means little-endian.
func NewBytes(buf []byte, engine endian.EndianEngine) Bytes {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return Bytes{buf: buf, engine: engine}
}

// FromRange returns a view of buf[start:end] positioned at start.
// An end before start is reported as a usage violation and yields an empty view.
func FromRange(buf []byte, start, end int, engine endian.EndianEngine) Bytes {
	if end < start {
		check.Usage("view.FromRange", errs.ErrInvalidRange)
		return Bytes{}
	}
	if !check.Bounds("view.FromRange", start, end-start, len(buf)) {
		return Bytes{}
	}

	b := NewBytes(buf[:end], engine)
	b.off = start

	return b
}

// IsNil reports whether the view has no buffer.
func (b Bytes) IsNil() bool {
	return b.buf == nil
}

// Offset returns the absolute position of the view inside its buffer.
func (b Bytes) Offset() int {
	return b.off
}

// Len returns the number of bytes between the view and the buffer end.
func (b Bytes) Len() int {
	return len(b.buf) - b.off
}

// Buffer returns the whole underlying buffer.
func (b Bytes) Buffer() []byte {
	return b.buf
}

// Engine returns the byte order engine.
func (b Bytes) Engine() endian.EndianEngine {
	return b.engine
}

// Raw returns the bytes from the view to the buffer end.
func (b Bytes) Raw() []byte {
	if b.off > len(b.buf) {
		return nil
	}

	return b.buf[b.off:]
}

// Sub returns a view rel bytes further into the same buffer.
func (b Bytes) Sub(rel int) Bytes {
	off := b.off + rel
	if rel < 0 || off > len(b.buf) {
		check.Report(&check.Violation{Op: "view.Sub", Offset: off, Limit: len(b.buf), Err: errs.ErrBoundsViolation})
		return b.at(len(b.buf))
	}

	return b.at(off)
}

// Slice returns the n bytes at rel. The result aliases the buffer and has its capacity
// clipped so appends cannot overwrite neighbouring fields.
func (b Bytes) Slice(rel, n int) []byte {
	off := b.off + rel
	if !check.Bounds("view.Slice", off, n, len(b.buf)) {
		return nil
	}

	return b.buf[off : off+n : off+n]
}

func (b Bytes) at(off int) Bytes {
	b.off = off
	return b
}

// Get reads the T at rel.
func Get[T Number](b Bytes, rel int) T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	off := b.off + rel
	if !check.Bounds("view.Get", off, size, len(b.buf)) {
		return zero
	}

	return decode[T](b.engine, b.buf[off:off+size])
}

// Put writes v at rel.
func Put[T Number](b Bytes, rel int, v T) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	off := b.off + rel
	if !check.Bounds("view.Put", off, size, len(b.buf)) {
		return
	}

	encode(b.engine, b.buf[off:off+size], v)
}

// SizeOf returns the encoded size of T.
func SizeOf[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

//nolint: gosec
func decode[T Number](e endian.EndianEngine, p []byte) T {
	var v T
	switch any(v).(type) {
	case int8:
		return T(int8(p[0]))
	case uint8:
		return T(p[0])
	case int16:
		return T(int16(e.Uint16(p)))
	case uint16:
		return T(e.Uint16(p))
	case int32:
		return T(int32(e.Uint32(p)))
	case uint32:
		return T(e.Uint32(p))
	case int64:
		return T(int64(e.Uint64(p)))
	case uint64:
		return T(e.Uint64(p))
	case float32:
		return T(math.Float32frombits(e.Uint32(p)))
	case float64:
		return T(math.Float64frombits(e.Uint64(p)))
	}

	return v
}

//nolint: gosec
func encode[T Number](e endian.EndianEngine, p []byte, v T) {
	var zero T
	switch any(zero).(type) {
	case int8:
		p[0] = byte(int8(v))
	case uint8:
		p[0] = uint8(v)
	case int16:
		e.PutUint16(p, uint16(int16(v)))
	case uint16:
		e.PutUint16(p, uint16(v))
	case int32:
		e.PutUint32(p, uint32(int32(v)))
	case uint32:
		e.PutUint32(p, uint32(v))
	case int64:
		e.PutUint64(p, uint64(int64(v)))
	case uint64:
		e.PutUint64(p, uint64(v))
	case float32:
		e.PutUint32(p, math.Float32bits(float32(v)))
	case float64:
		e.PutUint64(p, math.Float64bits(float64(v)))
	}
}

// primitiveOf maps T to its SBE primitive. uint8 maps to Uint8, never Char.
func primitiveOf[T Number]() format.Primitive {
	var zero T
	switch any(zero).(type) {
	case int8:
		return format.Int8
	case uint8:
		return format.Uint8
	case int16:
		return format.Int16
	case uint16:
		return format.Uint16
	case int32:
		return format.Int32
	case uint32:
		return format.Uint32
	case int64:
		return format.Int64
	case uint64:
		return format.Uint64
	case float32:
		return format.Float
	default:
		return format.Double
	}
}

// fromBits converts zero-extended wire bits into T.
//
//nolint: gosec
func fromBits[T Number](bits uint64) T {
	var v T
	switch any(v).(type) {
	case int8:
		return T(int8(bits))
	case uint8:
		return T(uint8(bits))
	case int16:
		return T(int16(bits))
	case uint16:
		return T(uint16(bits))
	case int32:
		return T(int32(bits))
	case uint32:
		return T(uint32(bits))
	case int64:
		return T(int64(bits))
	case uint64:
		return T(bits)
	case float32:
		return T(math.Float32frombits(uint32(bits)))
	case float64:
		return T(math.Float64frombits(bits))
	}

	return v
}

// getBits reads the primitive p at rel as zero-extended wire bits.
func getBits(b Bytes, rel int, p format.Primitive) uint64 {
	size := p.Size()
	off := b.off + rel
	if !check.Bounds("view.getBits", off, size, len(b.buf)) {
		return 0
	}

	switch size {
	case 1:
		return uint64(b.buf[off])
	case 2:
		return uint64(b.engine.Uint16(b.buf[off:]))
	case 4:
		return uint64(b.engine.Uint32(b.buf[off:]))
	case 8:
		return b.engine.Uint64(b.buf[off:])
	default:
		return 0
	}
}

// putBits writes the low bits of v as primitive p at rel.
//
//nolint: gosec
func putBits(b Bytes, rel int, p format.Primitive, v uint64) {
	size := p.Size()
	off := b.off + rel
	if !check.Bounds("view.putBits", off, size, len(b.buf)) {
		return
	}

	switch size {
	case 1:
		b.buf[off] = byte(v)
	case 2:
		b.engine.PutUint16(b.buf[off:], uint16(v))
	case 4:
		b.engine.PutUint32(b.buf[off:], uint32(v))
	case 8:
		b.engine.PutUint64(b.buf[off:], v)
	}
}

// shift moves every byte from the absolute offset from up to the buffer end by delta.
// Growing zero-fills the opened gap and consumes the last delta bytes of the buffer, which
// must be zero slack; shrinking zero-fills the freed tail.
func shift(b Bytes, op string, from, delta int) bool {
	buf := b.buf
	switch {
	case delta > 0:
		if !canGrow(b, from, delta) {
			check.Report(&check.Violation{Op: op, Offset: from, Size: delta, Limit: len(buf), Err: errs.ErrInsufficientSlack})
			return false
		}
		copy(buf[from+delta:], buf[from:len(buf)-delta])
		clear(buf[from : from+delta])
	case delta < 0:
		if !check.Bounds(op, from+delta, -delta, len(buf)) {
			return false
		}
		copy(buf[from+delta:], buf[from:])
		clear(buf[len(buf)+delta:])
	}

	return true
}

// canGrow reports whether delta bytes can be opened at from without a violation. Only a
// zero tail counts as slack, so live bytes are never pushed off the buffer end.
func canGrow(b Bytes, from, delta int) bool {
	if delta <= 0 {
		return true
	}
	if from < 0 || from > len(b.buf)-delta {
		return false
	}
	for _, c := range b.buf[len(b.buf)-delta:] {
		if c != 0 {
			return false
		}
	}

	return true
}
