package visit

import (
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
)

// Sizer is implemented by every view with an encoded size.
type Sizer interface {
	SizeBytes() int
}

// SizeBytes returns the encoded size of v, trusting the buffer.
func SizeBytes(v Sizer) int {
	return v.SizeBytes()
}

// Checked is the result of SizeBytesChecked.
type Checked struct {
	Valid bool // Valid reports whether the whole message fits.
	Size  int  // Size is the message size, or the bytes validated before the failure.
}

// SizeBytesChecked computes the size of m without reading past size bytes from its start
// or past the buffer end. Headers, dimensions and length prefixes are only read after
// they are known to be inside the budget.
func SizeBytesChecked(m view.Message, size int) Checked {
	limit := min(size, m.View().Len())
	if limit < 0 {
		limit = 0
	}

	ck := checker{left: limit}
	ok := ck.message(m)

	return Checked{Valid: ok, Size: limit - ck.left}
}

// SizeBytesCheckedAt runs SizeBytesChecked for the message at c, bounded by the bytes
// remaining after the cursor. On success the cursor is moved past the message.
func SizeBytesCheckedAt(m view.Message, c *view.Cursor) Checked {
	res := SizeBytesChecked(m, c.Remaining())
	if res.Valid {
		c.Advance(res.Size)
	}

	return res
}

type checker struct {
	left int
}

func (ck *checker) take(n int) bool {
	if n < 0 || n > ck.left {
		return false
	}
	ck.left -= n

	return true
}

func (ck *checker) message(m view.Message) bool {
	t := m.Traits()
	if !ck.take(t.Header().Size) {
		return false
	}

	bl := m.BlockLength()
	if !ck.take(bl) {
		return false
	}

	_, ok := ck.tail(m.Body().Sub(bl), t.Groups, t.Data)

	return ok
}

// tail checks the groups and data that start at pos and returns the position after them.
func (ck *checker) tail(pos view.Bytes, groups []*traits.Group, data []*traits.Data) (view.Bytes, bool) {
	for _, gt := range groups {
		g := view.NewGroup(pos, gt)
		ds := gt.DimensionTraits().Size
		if !ck.take(ds) {
			return pos, false
		}

		n, bl := g.Len(), g.BlockLength()
		if n < 0 || bl < 0 {
			return pos, false
		}
		pos = pos.Sub(ds)
		if gt.IsFlat() {
			if bl > 0 && n > ck.left/bl {
				return pos, false
			}
			if !ck.take(n * bl) {
				return pos, false
			}
			pos = pos.Sub(n * bl)

			continue
		}

		for range n {
			if !ck.take(bl) {
				return pos, false
			}
			e := view.EntryAt(pos, bl, gt)
			var ok bool
			if pos, ok = ck.tail(e.View().Sub(bl), gt.Groups, gt.Data); !ok {
				return pos, false
			}
		}
	}

	for _, dt := range data {
		ps := dt.PrefixSize()
		if !ck.take(ps) {
			return pos, false
		}

		n := view.NewData(pos, dt).Len()
		es := dt.ElementSize()
		if n < 0 || n > ck.left/es || !ck.take(n*es) {
			return pos, false
		}
		pos = pos.Sub(ps + n*es)
	}

	return pos, true
}
