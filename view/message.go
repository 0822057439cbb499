package view

import (
	"fmt"

	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/traits"
)

// Message is a view of a whole message: header, root block, groups and data.
type Message struct {
	b Bytes
	t *traits.Message
}

// NewMessage returns a message view at the start of buf, using the byte order of the
// message's schema.
func NewMessage(buf []byte, t *traits.Message) Message {
	return Message{b: NewBytes(buf, t.Engine()), t: t}
}

// MessageAt returns a message view at b.
func MessageAt(b Bytes, t *traits.Message) Message {
	return Message{b: b, t: t}
}

// View returns the underlying view.
func (m Message) View() Bytes { return m.b }

// Traits returns the descriptor.
func (m Message) Traits() *traits.Message { return m.t }

// Header returns the message header.
func (m Message) Header() Header {
	return Header{b: m.b, t: m.t.Header()}
}

// FillHeader writes the block length, template id, schema id and version of the
// descriptor into the header and returns it.
func (m Message) FillHeader() Header {
	h := m.Header()
	h.SetBlockLength(m.t.BlockLength)
	h.SetTemplateID(m.t.ID)
	if s := m.t.Schema(); s != nil {
		h.SetSchemaID(s.ID)
		h.SetVersion(s.Version)
	}

	return h
}

// Validate checks that the header and the declared root block fit the buffer.
//
// Returns:
//   - errs.ErrTruncatedMessage if the buffer cannot hold the header
//   - errs.ErrBlockLengthTooLong if the declared block length passes the buffer end
func (m Message) Validate() error {
	hs := m.t.Header().Size
	if m.b.Len() < hs {
		return fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrTruncatedMessage, m.b.Len(), hs)
	}

	if bl := m.BlockLength(); bl > m.b.Len()-hs {
		return fmt.Errorf("%w: block length %d, %d bytes after header", errs.ErrBlockLengthTooLong, bl, m.b.Len()-hs)
	}

	return nil
}

// BlockLength returns the root block length declared in the header. Members after the
// root block are located with it, so messages from newer schema versions with longer
// blocks remain readable.
func (m Message) BlockLength() int {
	return m.Header().BlockLength()
}

// Body returns a view at the root block.
func (m Message) Body() Bytes {
	return m.b.Sub(m.t.Header().Size)
}

// Field returns a view at root block field i.
func (m Message) Field(i int) Bytes {
	return m.level().field(i)
}

// Group returns group i, skipping the groups before it.
func (m Message) Group(i int) Group {
	return m.level().group(i)
}

// Data returns data field i, skipping the groups and data fields before it.
func (m Message) Data(i int) Data {
	return m.level().dataField(i)
}

// Cursor returns a cursor at the root block.
func (m Message) Cursor() Cursor {
	return NewCursor(m.Body())
}

// GroupFrom returns group i at the cursor and leaves the cursor at its first entry.
// Group 0 is located from the block length; later groups expect the cursor to have
// consumed the previous one.
func (m Message) GroupFrom(c *Cursor, i int) Group {
	return m.level().groupFrom(c, i)
}

// DataFrom returns data field i at the cursor and leaves the cursor after it.
func (m Message) DataFrom(c *Cursor, i int) Data {
	return m.level().dataFrom(c, i)
}

// SizeBytes returns the encoded size of the whole message, walking every group.
func (m Message) SizeBytes() int {
	return m.t.Header().Size + m.level().sizeBytes()
}

// SizeBytesAt returns the size of the message given a cursor that has consumed all of it.
func (m Message) SizeBytesAt(c Cursor) int {
	return c.pos - m.b.off
}

func (m Message) level() level {
	return level{
		body:        m.Body(),
		blockLength: m.BlockLength(),
		fields:      m.t.Fields,
		groups:      m.t.Groups,
		data:        m.t.Data,
	}
}
