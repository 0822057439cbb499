package traits

import "github.com/arloliu/sbeview/format"

// Field places a value descriptor at a fixed offset inside a block or composite.
// Value is a *Type, *Enum, *Set or *Composite.
type Field struct {
	Attrs
	ID     uint16
	Offset int
	Value  Descriptor
}

// SizeBytes returns the encoded size of the field value.
func (f *Field) SizeBytes() int {
	return f.Value.SizeBytes()
}

// End returns the offset one past the last byte of the field.
func (f *Field) End() int {
	return f.Offset + f.SizeBytes()
}

// Presence returns the presence of the field value. Sets and composites are required.
func (f *Field) Presence() format.Presence {
	switch v := f.Value.(type) {
	case *Type:
		return v.Presence
	case *Enum:
		return v.Presence
	default:
		return format.PresenceRequired
	}
}

// Composite describes a fixed-size type made of named elements at fixed offsets.
type Composite struct {
	Attrs
	Size     int
	Elements []*Field
}

var _ Descriptor = (*Composite)(nil)

func (c *Composite) Kind() Kind     { return KindComposite }
func (c *Composite) SizeBytes() int { return c.Size }

// ElementByName returns the element with the given name.
func (c *Composite) ElementByName(name string) (*Field, bool) {
	return fieldByName(c.Elements, name)
}

// FieldRef locates one primitive inside a header or dimension composite.
type FieldRef struct {
	Offset    int
	Primitive format.Primitive
}

// Header describes the message header composite.
type Header struct {
	Size        int
	BlockLength FieldRef
	TemplateID  FieldRef
	SchemaID    FieldRef
	Version     FieldRef
}

// StandardHeader returns the default SBE message header: four uint16 fields.
func StandardHeader() *Header {
	return &Header{
		Size:        8,
		BlockLength: FieldRef{Offset: 0, Primitive: format.Uint16},
		TemplateID:  FieldRef{Offset: 2, Primitive: format.Uint16},
		SchemaID:    FieldRef{Offset: 4, Primitive: format.Uint16},
		Version:     FieldRef{Offset: 6, Primitive: format.Uint16},
	}
}

// Dimension describes the group size encoding that precedes every group.
// NumGroups and NumVarDataFields are optional.
type Dimension struct {
	Size             int
	BlockLength      FieldRef
	NumInGroup       FieldRef
	NumGroups        *FieldRef
	NumVarDataFields *FieldRef
}

// StandardDimension returns the default SBE groupSizeEncoding: uint16 blockLength and
// uint16 numInGroup.
func StandardDimension() *Dimension {
	return &Dimension{
		Size:        4,
		BlockLength: FieldRef{Offset: 0, Primitive: format.Uint16},
		NumInGroup:  FieldRef{Offset: 2, Primitive: format.Uint16},
	}
}

func fieldByName(fields []*Field, name string) (*Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}
