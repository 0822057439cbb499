package view

import (
	"github.com/arloliu/sbeview/traits"
)

// level is the common layout of a message body and a group entry: a fixed block followed
// by groups, then data fields.
type level struct {
	body        Bytes
	blockLength int
	fields      []*traits.Field
	groups      []*traits.Group
	data        []*traits.Data
}

// tail returns the position of the first group or data field.
func (l level) tail() Bytes {
	return l.body.Sub(l.blockLength)
}

func (l level) field(i int) Bytes {
	return l.body.Sub(l.fields[i].Offset)
}

func (l level) group(i int) Group {
	pos := l.tail()
	for j := range i {
		pos = pos.Sub(NewGroup(pos, l.groups[j]).SizeBytes())
	}

	return NewGroup(pos, l.groups[i])
}

func (l level) dataField(i int) Data {
	pos := l.tail()
	for _, g := range l.groups {
		pos = pos.Sub(NewGroup(pos, g).SizeBytes())
	}
	for j := range i {
		pos = pos.Sub(NewData(pos, l.data[j]).SizeBytes())
	}

	return NewData(pos, l.data[i])
}

// groupFrom returns group i at the cursor and leaves the cursor after its dimension.
// The first group is located from the block length, so the fixed block does not have to
// be read through the cursor.
func (l level) groupFrom(c *Cursor, i int) Group {
	if i == 0 {
		c.MoveTo(l.tail())
	}

	g := NewGroup(c.Bytes(), l.groups[i])
	c.Advance(g.Dimension().SizeBytes())

	return g
}

// dataFrom returns data field i at the cursor and leaves the cursor after it.
func (l level) dataFrom(c *Cursor, i int) Data {
	if i == 0 && len(l.groups) == 0 {
		c.MoveTo(l.tail())
	}

	d := NewData(c.Bytes(), l.data[i])
	c.Advance(d.SizeBytes())

	return d
}

func (l level) sizeBytes() int {
	size := l.blockLength
	pos := l.tail()
	for _, g := range l.groups {
		n := NewGroup(pos, g).SizeBytes()
		size += n
		pos = pos.Sub(n)
	}
	for _, d := range l.data {
		n := NewData(pos, d).SizeBytes()
		size += n
		pos = pos.Sub(n)
	}

	return size
}

// emptyTailSize returns the size of a fresh entry's groups and data: one empty dimension
// per group and one zero length prefix per data field.
func emptyTailSize(t *traits.Group) int {
	size := 0
	for _, g := range t.Groups {
		size += g.DimensionTraits().Size
	}
	for _, d := range t.Data {
		size += d.PrefixSize()
	}

	return size
}

// initTail writes the empty dimensions of a fresh entry's groups at pos. Data prefixes are
// already zero.
func initTail(pos Bytes, t *traits.Group) {
	for _, g := range t.Groups {
		dim := Dimension{b: pos, t: g.DimensionTraits()}
		dim.init(g.BlockLength, g)
		pos = pos.Sub(dim.SizeBytes())
	}
}
