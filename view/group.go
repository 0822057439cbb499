package view

import (
	"iter"

	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/traits"
)

// Group is a view of a repeating group: a dimension followed by its entries.
//
// Flat groups (entries without nested groups or data) support O(1) Entry(i). Nested groups
// can only be walked forward with All or Range; Entry(i) on them is a usage violation.
type Group struct {
	b Bytes
	t *traits.Group
}

// NewGroup returns a group view at b described by t.
func NewGroup(b Bytes, t *traits.Group) Group {
	return Group{b: b, t: t}
}

// View returns the underlying view.
func (g Group) View() Bytes { return g.b }

// Traits returns the descriptor.
func (g Group) Traits() *traits.Group { return g.t }

// Dimension returns the group size encoding.
func (g Group) Dimension() Dimension {
	return Dimension{b: g.b, t: g.t.DimensionTraits()}
}

// Len returns the entry count.
func (g Group) Len() int {
	return g.Dimension().NumInGroup()
}

// Empty reports whether the group has no entries.
func (g Group) Empty() bool {
	return g.Len() == 0
}

// MaxLen returns the largest entry count the dimension can encode.
func (g Group) MaxLen() int {
	return int(traits.BuiltinMax(g.t.DimensionTraits().NumInGroup.Primitive)) //nolint: gosec
}

// IsFlat reports whether entries have a fixed size.
func (g Group) IsFlat() bool {
	return g.t.IsFlat()
}

// BlockLength returns the entry block length declared in the dimension.
func (g Group) BlockLength() int {
	return g.Dimension().BlockLength()
}

// Entry returns entry i of a flat group.
func (g Group) Entry(i int) Entry {
	if !g.IsFlat() {
		check.Usage("view.Group.Entry", errs.ErrNestedGroupIndex)
		return Entry{t: g.t}
	}
	if !indexOK("view.Group.Entry", i, g.Len()) {
		return Entry{t: g.t}
	}

	bl := g.BlockLength()

	return newEntry(g.entries().Sub(i*bl), bl, g.t)
}

// Front returns the first entry. It is valid for flat and nested groups.
func (g Group) Front() Entry {
	if !indexOK("view.Group.Front", 0, g.Len()) {
		return Entry{t: g.t}
	}

	return newEntry(g.entries(), g.BlockLength(), g.t)
}

// Back returns the last entry of a flat group.
func (g Group) Back() Entry {
	return g.Entry(g.Len() - 1)
}

// All yields every entry in order. Nested entries are located by measuring the ones
// before them.
func (g Group) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		n, bl := g.Len(), g.BlockLength()
		pos := g.entries()
		for i := range n {
			e := newEntry(pos, bl, g.t)
			if !yield(i, e) {
				return
			}
			pos = pos.Sub(e.SizeBytes())
		}
	}
}

// Range yields every entry at the cursor, which must sit at the first entry as left by
// GroupFrom. After each entry the cursor is moved past it: if the caller did not consume
// the entry's groups and data through the cursor, Range skips them; if it consumed some,
// it must have consumed all of them.
func (g Group) Range(c *Cursor) iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		n, bl := g.Len(), g.BlockLength()
		for i := range n {
			start := c.pos
			e := newEntry(c.Bytes(), bl, g.t)
			if !yield(i, e) {
				return
			}
			if c.pos <= start+bl {
				c.pos = start
				c.Advance(e.SizeBytes())
			}
		}
	}
}

// SizeBytes returns the encoded size of the dimension and all entries.
func (g Group) SizeBytes() int {
	dim := g.Dimension()
	n := dim.NumInGroup()
	if g.IsFlat() {
		return dim.SizeBytes() + n*dim.BlockLength()
	}

	size := dim.SizeBytes()
	for _, e := range g.All() {
		size += e.SizeBytes()
	}

	return size
}

// Resize sets the entry count to n. New entries are zero-filled and their nested groups
// get empty dimensions; removed entries are dropped from the end. Every byte after the
// group moves by the size difference. An empty group also gets its dimension block
// length set from the descriptor.
func (g Group) Resize(n int) {
	const op = "view.Group.Resize"
	if n < 0 || n > g.MaxLen() {
		check.Report(&check.Violation{Op: op, Offset: g.b.off, Size: n, Limit: g.MaxLen(), Err: errs.ErrLengthOverflow})
		return
	}

	dim := g.Dimension()
	old := dim.NumInGroup()
	bl := dim.BlockLength()
	if old == 0 {
		bl = g.t.BlockLength
	}

	end := g.b.off + g.SizeBytes()
	switch {
	case n > old:
		entrySize := bl + emptyTailSize(g.t)
		if !shift(g.b, op, end, (n-old)*entrySize) {
			return
		}
		if !g.IsFlat() {
			pos := g.b.at(end)
			for range n - old {
				initTail(pos.Sub(bl), g.t)
				pos = pos.Sub(entrySize)
			}
		}
	case n < old:
		cut := g.entries().Offset() + n*bl
		if !g.IsFlat() {
			cut = g.entries().Offset()
			for i, e := range g.All() {
				if i == n {
					break
				}
				cut += e.SizeBytes()
			}
		}
		if !shift(g.b, op, end, cut-end) {
			return
		}
	}

	if old == 0 {
		dim.init(bl, g.t)
	}
	dim.SetNumInGroup(n)
}

// Clear removes every entry.
func (g Group) Clear() {
	g.Resize(0)
}

func (g Group) entries() Bytes {
	return g.b.Sub(g.t.DimensionTraits().Size)
}

// Entry is a view of one group entry: a fixed block followed by nested groups and data.
type Entry struct {
	b           Bytes
	blockLength int
	t           *traits.Group
}

// EntryAt returns an entry view at b with the given block length.
func EntryAt(b Bytes, blockLength int, t *traits.Group) Entry {
	return Entry{b: b, blockLength: blockLength, t: t}
}

func newEntry(b Bytes, blockLength int, t *traits.Group) Entry {
	return Entry{b: b, blockLength: blockLength, t: t}
}

// View returns the underlying view.
func (e Entry) View() Bytes { return e.b }

// Traits returns the descriptor of the owning group.
func (e Entry) Traits() *traits.Group { return e.t }

// BlockLength returns the entry block length.
func (e Entry) BlockLength() int { return e.blockLength }

// Field returns a view at entry field i.
func (e Entry) Field(i int) Bytes {
	return e.level().field(i)
}

// Group returns nested group i.
func (e Entry) Group(i int) Group {
	return e.level().group(i)
}

// Data returns data field i.
func (e Entry) Data(i int) Data {
	return e.level().dataField(i)
}

// GroupFrom returns nested group i at the cursor and leaves the cursor at its first entry.
func (e Entry) GroupFrom(c *Cursor, i int) Group {
	return e.level().groupFrom(c, i)
}

// DataFrom returns data field i at the cursor and leaves the cursor after it.
func (e Entry) DataFrom(c *Cursor, i int) Data {
	return e.level().dataFrom(c, i)
}

// SizeBytes returns the encoded size of the entry.
func (e Entry) SizeBytes() int {
	if e.t == nil || e.t.IsFlat() {
		return e.blockLength
	}

	return e.level().sizeBytes()
}

func (e Entry) level() level {
	return level{
		body:        e.b,
		blockLength: e.blockLength,
		fields:      e.t.Fields,
		groups:      e.t.Groups,
		data:        e.t.Data,
	}
}
