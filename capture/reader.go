package capture

import (
	"fmt"
	"iter"
	"time"

	"github.com/arloliu/sbeview/compress"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/section"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
	"github.com/arloliu/sbeview/visit"
)

// Reader gives access to the messages of a capture. It is read-only after NewReader and
// safe for concurrent use.
type Reader struct {
	schema   *traits.Schema
	header   section.Header
	entries  []section.IndexEntry
	messages []*traits.Message
	payload  []byte
}

// NewReader parses data, decompresses the payload and validates every message against the
// index and schema.
//
// Returns:
//   - *Reader: reader over the capture
//   - error: errs.ErrUsage for a nil schema, section parse errors, errs.ErrSchemaMismatch,
//     errs.ErrCorruptCapture, errs.ErrUnknownTemplate or decompression errors
func NewReader(data []byte, schema *traits.Schema) (*Reader, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", errs.ErrUsage)
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if header.SchemaID != schema.ID || header.Flag.ByteOrder() != schema.ByteOrder {
		return nil, fmt.Errorf("%w: capture schema %d/%s, reader schema %d/%s", errs.ErrSchemaMismatch,
			header.SchemaID, header.Flag.ByteOrder(), schema.ID, schema.ByteOrder)
	}
	if uint64(len(data)) < uint64(header.PayloadOffset) {
		return nil, fmt.Errorf("%w: %d bytes, index ends at %d", errs.ErrCorruptCapture, len(data), header.PayloadOffset)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[header.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrCorruptCapture, len(payload), header.PayloadSize)
	}

	r := &Reader{
		schema:   schema,
		header:   header,
		entries:  make([]section.IndexEntry, header.MessageCount),
		messages: make([]*traits.Message, header.MessageCount),
		payload:  payload,
	}

	engine := header.Flag.GetEndianEngine()
	for i := range r.entries {
		off := section.IndexOffsetOffset + i*section.IndexEntrySize
		if r.entries[i], err = section.ParseIndexEntry(data[off:], engine); err != nil {
			return nil, err
		}
		if err := r.validate(i); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}

	return r, nil
}

// validate checks that entry i describes a complete message of a known template.
func (r *Reader) validate(i int) error {
	e := r.entries[i]
	if e.End() > uint64(len(r.payload)) {
		return fmt.Errorf("%w: message ends at %d past payload size %d", errs.ErrCorruptCapture, e.End(), len(r.payload))
	}

	t, ok := r.schema.MessageByID(e.TemplateID)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrUnknownTemplate, e.TemplateID)
	}

	buf := r.payload[e.Offset:e.End():e.End()]
	if len(buf) < t.Header().Size {
		return fmt.Errorf("%w: message shorter than its header", errs.ErrCorruptCapture)
	}

	m := view.NewMessage(buf, t)
	h := m.Header()
	if h.TemplateID() != e.TemplateID || h.Version() != e.Version || h.BlockLength() != int(e.BlockLength) {
		return fmt.Errorf("%w: message header disagrees with index", errs.ErrCorruptCapture)
	}

	res := visit.SizeBytesChecked(m, len(buf))
	if !res.Valid || res.Size != len(buf) {
		return fmt.Errorf("%w: %s, %d of %d bytes validated", errs.ErrCorruptCapture, t.Name, res.Size, len(buf))
	}
	r.messages[i] = t

	return nil
}

// Len returns the number of messages.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Header returns the parsed capture header.
func (r *Reader) Header() section.Header {
	return r.header
}

// CreatedAt returns the creation time recorded by the writer.
func (r *Reader) CreatedAt() time.Time {
	return r.header.CreatedAtAsTime()
}

// Entry returns index entry i.
func (r *Reader) Entry(i int) (section.IndexEntry, error) {
	if uint(i) >= uint(len(r.entries)) {
		return section.IndexEntry{}, fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, i, len(r.entries))
	}

	return r.entries[i], nil
}

// Message returns a view of message i. The view aliases the decompressed payload and is
// clipped to the message.
func (r *Reader) Message(i int) (view.Message, error) {
	if uint(i) >= uint(len(r.entries)) {
		return view.Message{}, fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, i, len(r.entries))
	}

	return r.message(i), nil
}

func (r *Reader) message(i int) view.Message {
	e := r.entries[i]
	return view.NewMessage(r.payload[e.Offset:e.End():e.End()], r.messages[i])
}

// All yields every message in capture order.
func (r *Reader) All() iter.Seq2[int, view.Message] {
	return func(yield func(int, view.Message) bool) {
		for i := range r.entries {
			if !yield(i, r.message(i)) {
				return
			}
		}
	}
}

// ByTemplate yields the messages with the given template id. Only the index is consulted
// to select them.
func (r *Reader) ByTemplate(templateID uint16) iter.Seq2[int, view.Message] {
	return func(yield func(int, view.Message) bool) {
		for i, e := range r.entries {
			if e.TemplateID != templateID {
				continue
			}
			if !yield(i, r.message(i)) {
				return
			}
		}
	}
}
