package view

import (
	"bytes"
	"iter"

	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
)

// StaticArray is a fixed-length array of n elements at a fixed offset.
type StaticArray[T Number] struct {
	b Bytes
	n int
}

// NewStaticArray returns an array of n elements at b.
func NewStaticArray[T Number](b Bytes, n int) StaticArray[T] {
	return StaticArray[T]{b: b, n: n}
}

// View returns the underlying view.
func (a StaticArray[T]) View() Bytes { return a.b }

// Len returns the element count.
func (a StaticArray[T]) Len() int { return a.n }

// SizeBytes returns the encoded size.
func (a StaticArray[T]) SizeBytes() int { return a.n * SizeOf[T]() }

// At returns element i.
func (a StaticArray[T]) At(i int) T {
	if !indexOK("view.StaticArray.At", i, a.n) {
		return 0
	}

	return Get[T](a.b, i*SizeOf[T]())
}

// Set writes element i.
func (a StaticArray[T]) Set(i int, v T) {
	if !indexOK("view.StaticArray.Set", i, a.n) {
		return
	}
	Put(a.b, i*SizeOf[T](), v)
}

// Fill writes v to every element.
func (a StaticArray[T]) Fill(v T) {
	for i := range a.n {
		Put(a.b, i*SizeOf[T](), v)
	}
}

// Assign copies up to Len values from vals and returns the number copied.
func (a StaticArray[T]) Assign(vals []T) int {
	n := min(len(vals), a.n)
	for i := range n {
		Put(a.b, i*SizeOf[T](), vals[i])
	}

	return n
}

// Raw returns the encoded bytes.
func (a StaticArray[T]) Raw() []byte {
	return a.b.Slice(0, a.SizeBytes())
}

// All yields every element in order.
func (a StaticArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.n {
			if !yield(i, Get[T](a.b, i*SizeOf[T]())) {
				return
			}
		}
	}
}

// CharArray is a fixed-length char array used as a NUL padded string.
type CharArray struct {
	b Bytes
	n int
}

// NewCharArray returns a char array of n bytes at b.
func NewCharArray(b Bytes, n int) CharArray {
	return CharArray{b: b, n: n}
}

// View returns the underlying view.
func (a CharArray) View() Bytes { return a.b }

// Len returns the array length.
func (a CharArray) Len() int { return a.n }

// Bytes returns the encoded bytes.
func (a CharArray) Bytes() []byte { return a.b.Slice(0, a.n) }

// At returns the byte at i.
func (a CharArray) At(i int) byte {
	if !indexOK("view.CharArray.At", i, a.n) {
		return 0
	}

	return Get[uint8](a.b, i)
}

// Set writes c at i.
func (a CharArray) Set(i int, c byte) {
	if !indexOK("view.CharArray.Set", i, a.n) {
		return
	}
	Put(a.b, i, c)
}

// StrLen returns the index of the first NUL, or Len when there is none.
func (a CharArray) StrLen() int {
	p := a.Bytes()
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return i
	}

	return len(p)
}

// StrLenR returns the length without trailing NUL padding, scanning from the end.
func (a CharArray) StrLenR() int {
	p := a.Bytes()
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}

	return n
}

// String returns the text up to the first NUL.
func (a CharArray) String() string {
	return string(a.Bytes()[:a.StrLen()])
}

// AssignString writes s, truncated to Len, and terminates it according to eos:
// EOSAll pads the remainder with NUL, EOSSingle writes one NUL when there is room,
// EOSNone leaves the remainder untouched. It returns the number of bytes of s written.
func (a CharArray) AssignString(s string, eos format.EOSMode) int {
	p := a.Bytes()
	if p == nil {
		return 0
	}

	n := copy(p, s)
	switch eos {
	case format.EOSAll:
		clear(p[n:])
	case format.EOSSingle:
		if n < len(p) {
			p[n] = 0
		}
	}

	return n
}

// Clear zeroes the array.
func (a CharArray) Clear() {
	clear(a.Bytes())
}

func indexOK(op string, i, n int) bool {
	if uint(i) < uint(n) {
		return true
	}
	check.Report(&check.Violation{Op: op, Offset: i, Size: 1, Limit: n, Err: errs.ErrIndexOutOfRange})

	return false
}
