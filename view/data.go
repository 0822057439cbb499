package view

import (
	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/traits"
)

// Data is a variable-length data field: a length prefix followed by the payload.
//
// Every mutation moves all bytes after the field. Growing needs that many unused bytes at
// the end of the buffer; views after the field are stale afterwards.
type Data struct {
	b Bytes
	t *traits.Data
}

// NewData returns a data view at b described by t.
func NewData(b Bytes, t *traits.Data) Data {
	return Data{b: b, t: t}
}

// View returns the underlying view.
func (d Data) View() Bytes { return d.b }

// Traits returns the descriptor.
func (d Data) Traits() *traits.Data { return d.t }

// Len returns the element count from the length prefix.
func (d Data) Len() int {
	return toInt(getBits(d.b, 0, d.t.Length))
}

// Empty reports whether the payload is empty.
func (d Data) Empty() bool {
	return d.Len() == 0
}

// MaxLen returns the largest length the prefix can encode.
func (d Data) MaxLen() int {
	if m := d.t.MaxLength(); m < uint64(maxInt) {
		return int(m)
	}

	return maxInt
}

// SizeBytes returns the prefix size plus the payload size.
func (d Data) SizeBytes() int {
	return d.t.PrefixSize() + d.Len()*d.t.ElementSize()
}

// Bytes returns the payload. It aliases the buffer.
func (d Data) Bytes() []byte {
	return d.b.Slice(d.t.PrefixSize(), d.Len()*d.t.ElementSize())
}

// At returns payload byte i.
func (d Data) At(i int) byte {
	if !indexOK("view.Data.At", i, d.Len()*d.t.ElementSize()) {
		return 0
	}

	return Get[uint8](d.b, d.t.PrefixSize()+i)
}

// String returns a copy of the payload as a string.
func (d Data) String() string {
	return string(d.Bytes())
}

// Resize sets the length to n, zero-filling new elements.
func (d Data) Resize(n int) {
	old := d.Len()
	if !d.lengthOK("view.Data.Resize", n) {
		return
	}

	es := d.t.ElementSize()
	if !shift(d.b, "view.Data.Resize", d.payloadEnd(old), (n-old)*es) {
		return
	}
	d.setLen(n)
}

// Clear sets the length to zero.
func (d Data) Clear() {
	d.Resize(0)
}

// Assign replaces the payload with p.
func (d Data) Assign(p []byte) {
	d.Resize(len(p))
	if d.Len() == len(p) {
		copy(d.Bytes(), p)
	}
}

// AssignString replaces the payload with s and terminates it according to eos:
// EOSAll always appends a NUL, EOSSingle appends one only when the length type and the
// buffer slack allow it, EOSNone never does.
func (d Data) AssignString(s string, eos format.EOSMode) {
	n := len(s)
	term := false
	switch eos {
	case format.EOSAll:
		term = true
	case format.EOSSingle:
		old := d.Len()
		term = n+1 <= d.MaxLen() && canGrow(d.b, d.payloadEnd(old), (n+1-old)*d.t.ElementSize())
	}

	if term {
		n++
	}
	d.Resize(n)
	if d.Len() != n {
		return
	}

	p := d.Bytes()
	copy(p, s)
	if term {
		p[len(s)] = 0
	}
}

// Append adds p after the current payload.
func (d Data) Append(p ...byte) {
	d.Insert(d.Len(), p)
}

// Insert opens room for p at element i and copies it there. The payload must have
// single-byte elements, which is the case for every SBE varData encoding; other data is
// reported as errs.ErrMultiByteElement and left unchanged.
func (d Data) Insert(i int, p []byte) {
	if d.t.ElementSize() != 1 {
		check.Usage("view.Data.Insert", errs.ErrMultiByteElement)
		return
	}

	old := d.Len()
	if i < 0 || i > old {
		check.Report(&check.Violation{Op: "view.Data.Insert", Offset: i, Limit: old, Err: errs.ErrIndexOutOfRange})
		return
	}
	if !d.lengthOK("view.Data.Insert", old+len(p)) {
		return
	}

	from := d.b.off + d.t.PrefixSize() + i
	if !shift(d.b, "view.Data.Insert", from, len(p)) {
		return
	}
	copy(d.b.buf[from:], p)
	d.setLen(old + len(p))
}

// Erase removes elements [i, j).
func (d Data) Erase(i, j int) {
	old := d.Len()
	if i < 0 || j < i || j > old {
		check.Report(&check.Violation{Op: "view.Data.Erase", Offset: i, Size: j - i, Limit: old, Err: errs.ErrIndexOutOfRange})
		return
	}

	es := d.t.ElementSize()
	from := d.b.off + d.t.PrefixSize() + j*es
	if !shift(d.b, "view.Data.Erase", from, -(j-i)*es) {
		return
	}
	d.setLen(old - (j - i))
}

func (d Data) payloadEnd(n int) int {
	return d.b.off + d.t.PrefixSize() + n*d.t.ElementSize()
}

func (d Data) setLen(n int) {
	putBits(d.b, 0, d.t.Length, uint64(n)) //nolint: gosec
}

func (d Data) lengthOK(op string, n int) bool {
	if n >= 0 && n <= d.MaxLen() {
		return true
	}
	check.Report(&check.Violation{Op: op, Offset: d.b.off, Size: n, Limit: d.MaxLen(), Err: errs.ErrLengthOverflow})

	return false
}

const maxInt = int(^uint(0) >> 1)
