package traits

import (
	"github.com/arloliu/sbeview/endian"
	"github.com/arloliu/sbeview/format"
)

// Message describes a message: a root block of fields followed by groups and data.
type Message struct {
	Attrs
	ID          uint16
	BlockLength int
	Fields      []*Field
	Groups      []*Group
	Data        []*Data

	schema *Schema
}

var _ Descriptor = (*Message)(nil)

func (m *Message) Kind() Kind     { return KindMessage }
func (m *Message) SizeBytes() int { return Variable }

// Schema returns the schema the message was compiled into, or nil.
func (m *Message) Schema() *Schema {
	return m.schema
}

// Header returns the header descriptor of the owning schema, or the standard header.
func (m *Message) Header() *Header {
	if m.schema != nil && m.schema.Header != nil {
		return m.schema.Header
	}

	return standardHeader
}

// Engine returns the byte order engine of the owning schema, little-endian by default.
func (m *Message) Engine() endian.EndianEngine {
	if m.schema != nil {
		return m.schema.Engine()
	}

	return endian.GetLittleEndianEngine()
}

// FieldByName returns the root block field with the given name.
func (m *Message) FieldByName(name string) (*Field, bool) {
	return fieldByName(m.Fields, name)
}

// GroupByName returns the index and descriptor of the group with the given name.
func (m *Message) GroupByName(name string) (int, *Group, bool) {
	return groupByName(m.Groups, name)
}

// DataByName returns the index and descriptor of the data field with the given name.
func (m *Message) DataByName(name string) (int, *Data, bool) {
	return dataByName(m.Data, name)
}

// Group describes a repeating group. Entries have a fixed block followed by nested groups
// and data.
type Group struct {
	Attrs
	ID          uint16
	BlockLength int
	Dimension   *Dimension // Dimension is the size encoding; nil means StandardDimension.
	Fields      []*Field
	Groups      []*Group
	Data        []*Data
}

var _ Descriptor = (*Group)(nil)

func (g *Group) Kind() Kind     { return KindGroup }
func (g *Group) SizeBytes() int { return Variable }

// IsFlat reports whether entries consist of the fixed block only, which makes index
// access O(1).
func (g *Group) IsFlat() bool {
	return len(g.Groups) == 0 && len(g.Data) == 0
}

// DimensionTraits returns the dimension descriptor, defaulting to StandardDimension.
func (g *Group) DimensionTraits() *Dimension {
	if g.Dimension != nil {
		return g.Dimension
	}

	return standardDimension
}

// FieldByName returns the entry field with the given name.
func (g *Group) FieldByName(name string) (*Field, bool) {
	return fieldByName(g.Fields, name)
}

// GroupByName returns the index and descriptor of the nested group with the given name.
func (g *Group) GroupByName(name string) (int, *Group, bool) {
	return groupByName(g.Groups, name)
}

// DataByName returns the index and descriptor of the data field with the given name.
func (g *Group) DataByName(name string) (int, *Data, bool) {
	return dataByName(g.Data, name)
}

// Data describes a variable-length data field: a length prefix followed by that many
// elements of Value.
type Data struct {
	Attrs
	ID                uint16
	Length            format.Primitive
	Value             format.Primitive
	CharacterEncoding string
}

var _ Descriptor = (*Data)(nil)

func (d *Data) Kind() Kind     { return KindData }
func (d *Data) SizeBytes() int { return Variable }

// ElementSize returns the size of one element, 1 when Value is unset.
func (d *Data) ElementSize() int {
	if size := d.Value.Size(); size > 0 {
		return size
	}

	return 1
}

// PrefixSize returns the size of the length prefix in bytes.
func (d *Data) PrefixSize() int {
	return d.Length.Size()
}

// MaxLength returns the largest length the prefix can encode. The SBE convention of
// reserving the unsigned maximum as null does not apply to data lengths.
func (d *Data) MaxLength() uint64 {
	return Mask(d.Length)
}

var (
	standardHeader    = StandardHeader()
	standardDimension = StandardDimension()
)

func groupByName(groups []*Group, name string) (int, *Group, bool) {
	for i, g := range groups {
		if g.Name == name {
			return i, g, true
		}
	}

	return -1, nil, false
}

func dataByName(data []*Data, name string) (int, *Data, bool) {
	for i, d := range data {
		if d.Name == name {
			return i, d, true
		}
	}

	return -1, nil, false
}
