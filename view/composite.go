package view

import (
	"github.com/arloliu/sbeview/traits"
)

// Composite is a view of a fixed-size type made of named elements.
type Composite struct {
	b Bytes
	t *traits.Composite
}

// NewComposite returns a composite view at b described by t.
func NewComposite(b Bytes, t *traits.Composite) Composite {
	return Composite{b: b, t: t}
}

// View returns the underlying view.
func (c Composite) View() Bytes { return c.b }

// Traits returns the descriptor.
func (c Composite) Traits() *traits.Composite { return c.t }

// SizeBytes returns the fixed composite size.
func (c Composite) SizeBytes() int { return c.t.Size }

// Field returns a view at element i.
func (c Composite) Field(i int) Bytes {
	return c.b.Sub(c.t.Elements[i].Offset)
}

// Header is a view of a message header.
type Header struct {
	b Bytes
	t *traits.Header
}

// NewHeader returns a header view at b. It lets a reader look at the template id before it
// knows which message follows.
func NewHeader(b Bytes, t *traits.Header) Header {
	return Header{b: b, t: t}
}

// View returns the underlying view.
func (h Header) View() Bytes { return h.b }

// SizeBytes returns the header size.
func (h Header) SizeBytes() int { return h.t.Size }

// BlockLength returns the root block length declared by the sender.
func (h Header) BlockLength() int { return toInt(readRef(h.b, h.t.BlockLength)) }

// TemplateID returns the message template id.
func (h Header) TemplateID() uint16 { return uint16(readRef(h.b, h.t.TemplateID)) } //nolint: gosec

// SchemaID returns the schema id.
func (h Header) SchemaID() uint16 { return uint16(readRef(h.b, h.t.SchemaID)) } //nolint: gosec

// Version returns the schema version the message was encoded with.
func (h Header) Version() uint16 { return uint16(readRef(h.b, h.t.Version)) } //nolint: gosec

// SetBlockLength writes the root block length.
func (h Header) SetBlockLength(v int) { writeRef(h.b, h.t.BlockLength, uint64(v)) } //nolint: gosec

// SetTemplateID writes the template id.
func (h Header) SetTemplateID(v uint16) { writeRef(h.b, h.t.TemplateID, uint64(v)) }

// SetSchemaID writes the schema id.
func (h Header) SetSchemaID(v uint16) { writeRef(h.b, h.t.SchemaID, uint64(v)) }

// SetVersion writes the schema version.
func (h Header) SetVersion(v uint16) { writeRef(h.b, h.t.Version, uint64(v)) }

// Dimension is a view of a group size encoding.
type Dimension struct {
	b Bytes
	t *traits.Dimension
}

// View returns the underlying view.
func (d Dimension) View() Bytes { return d.b }

// SizeBytes returns the dimension size.
func (d Dimension) SizeBytes() int { return d.t.Size }

// BlockLength returns the entry block length declared by the sender. Values that do not
// fit an int are clamped to the largest int.
func (d Dimension) BlockLength() int { return toInt(readRef(d.b, d.t.BlockLength)) }

// NumInGroup returns the entry count, clamped like BlockLength.
func (d Dimension) NumInGroup() int { return toInt(readRef(d.b, d.t.NumInGroup)) }

// SetBlockLength writes the entry block length.
func (d Dimension) SetBlockLength(v int) { writeRef(d.b, d.t.BlockLength, uint64(v)) } //nolint: gosec

// SetNumInGroup writes the entry count.
func (d Dimension) SetNumInGroup(v int) { writeRef(d.b, d.t.NumInGroup, uint64(v)) } //nolint: gosec

// NumGroups returns the nested group count, if the dimension encodes it.
func (d Dimension) NumGroups() (int, bool) {
	if d.t.NumGroups == nil {
		return 0, false
	}

	return toInt(readRef(d.b, *d.t.NumGroups)), true
}

// NumVarDataFields returns the data field count, if the dimension encodes it.
func (d Dimension) NumVarDataFields() (int, bool) {
	if d.t.NumVarDataFields == nil {
		return 0, false
	}

	return toInt(readRef(d.b, *d.t.NumVarDataFields)), true
}

func (d Dimension) init(blockLength int, t *traits.Group) {
	d.SetBlockLength(blockLength)
	d.SetNumInGroup(0)
	if d.t.NumGroups != nil {
		writeRef(d.b, *d.t.NumGroups, uint64(len(t.Groups)))
	}
	if d.t.NumVarDataFields != nil {
		writeRef(d.b, *d.t.NumVarDataFields, uint64(len(t.Data)))
	}
}

// toInt narrows a wire count, clamping values above the largest int.
func toInt(v uint64) int {
	if v > uint64(maxInt) {
		return maxInt
	}

	return int(v)
}

func readRef(b Bytes, ref traits.FieldRef) uint64 {
	return getBits(b, ref.Offset, ref.Primitive)
}

func writeRef(b Bytes, ref traits.FieldRef, v uint64) {
	putBits(b, ref.Offset, ref.Primitive, v)
}
