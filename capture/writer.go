package capture

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/compress"
	"github.com/arloliu/sbeview/endian"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/internal/options"
	"github.com/arloliu/sbeview/internal/pool"
	"github.com/arloliu/sbeview/section"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
	"github.com/arloliu/sbeview/visit"
)

// Default writer limits.
const (
	DefaultMaxMessages    = 65536
	DefaultMaxPayloadSize = 64 * 1024 * 1024
	DefaultMaxMessageSize = 4096
)

// Writer accumulates messages of one schema into a capture. It is not safe for concurrent
// use.
type Writer struct {
	schema         *traits.Schema
	engine         endian.EndianEngine
	header         *section.Header
	entries        []section.IndexEntry
	payload        *pool.ByteBuffer
	codec          compress.Codec
	maxMessages    int
	maxPayloadSize int
	maxMessageSize int
	rejected       int
	logger         zerolog.Logger
	finished       bool
}

// Option configures a Writer.
type Option = options.Option[*Writer]

// WithCompression sets the payload codec. The default is Zstd.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(w *Writer) error {
		codec, err := compress.CreateCodec(comp, "payload")
		if err != nil {
			return err
		}
		w.codec = codec
		w.header.Flag.SetCompression(comp)

		return nil
	})
}

// WithMaxMessages limits the number of messages in one capture.
func WithMaxMessages(n int) Option {
	return options.New(func(w *Writer) error {
		if n < 1 || n > section.MaxMessageCount {
			return fmt.Errorf("invalid max messages %d: must be within [1, %d]", n, section.MaxMessageCount)
		}
		w.maxMessages = n

		return nil
	})
}

// WithMaxPayloadSize limits the uncompressed size of all messages in one capture.
func WithMaxPayloadSize(n int) Option {
	return options.New(func(w *Writer) error {
		if n < 1 || n > section.MaxPayloadSize {
			return fmt.Errorf("invalid max payload size %d", n)
		}
		w.maxPayloadSize = n

		return nil
	})
}

// WithMaxMessageSize sets the size of the zeroed buffer Encode hands to its callback.
func WithMaxMessageSize(n int) Option {
	return options.New(func(w *Writer) error {
		if n < 1 || n > section.MaxPayloadSize {
			return fmt.Errorf("invalid max message size %d", n)
		}
		w.maxMessageSize = n

		return nil
	})
}

// WithLogger sets the logger. Rejected messages are logged at debug level and finished
// captures at info level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(w *Writer) {
		w.logger = logger
	})
}

// WithCreatedAt overrides the creation time recorded in the header.
func WithCreatedAt(ts time.Time) Option {
	return options.NoError(func(w *Writer) {
		w.header.CreatedAt = ts.UnixMicro()
	})
}

// NewWriter creates a Writer for messages of schema, which must be compiled.
//
// Returns:
//   - *Writer: writer ready to accept messages
//   - error: Configuration error if invalid options provided
func NewWriter(schema *traits.Schema, opts ...Option) (*Writer, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", errs.ErrUsage)
	}

	w := &Writer{
		schema:         schema,
		engine:         schema.Engine(),
		header:         section.NewHeader(schema.ID, schema.Version, time.Now()),
		codec:          compress.NewZstdCompressor(),
		maxMessages:    DefaultMaxMessages,
		maxPayloadSize: DefaultMaxPayloadSize,
		maxMessageSize: DefaultMaxMessageSize,
		logger:         zerolog.Nop(),
	}
	w.header.Flag.SetByteOrder(schema.ByteOrder)
	w.header.Flag.SetCompression(format.CompressionZstd)

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	w.payload = pool.GetPayloadBuffer()

	return w, nil
}

// Len returns the number of accepted messages.
func (w *Writer) Len() int {
	return len(w.entries)
}

// PayloadSize returns the uncompressed size of the accepted messages.
func (w *Writer) PayloadSize() int {
	if w.payload == nil {
		return 0
	}

	return w.payload.Len()
}

// Rejected returns the number of messages refused by Append since the last Reset.
func (w *Writer) Rejected() int {
	return w.rejected
}

// Append validates the message at the start of msg and copies it into the capture.
// Bytes after the message are ignored.
//
// Returns:
//   - int: encoded size of the message
//   - error: errs.ErrTruncatedMessage, errs.ErrUnknownTemplate, errs.ErrSchemaMismatch or
//     errs.ErrInvalidMessage for messages that cannot be captured, errs.ErrCaptureFull
//     when a limit is reached, errs.ErrWriterFinished after Finish
func (w *Writer) Append(msg []byte) (int, error) {
	if w.finished {
		return 0, errs.ErrWriterFinished
	}

	entry, err := w.inspect(msg)
	if err != nil {
		w.rejected++
		w.logger.Debug().Err(err).Int("len", len(msg)).Msg("message rejected")

		return 0, err
	}

	size := int(entry.Size)
	if len(w.entries) >= w.maxMessages || w.payload.Len()+size > w.maxPayloadSize {
		return 0, errs.ErrCaptureFull
	}

	entry.Offset = uint32(w.payload.Len()) //nolint: gosec
	_, _ = w.payload.Write(msg[:size])
	w.entries = append(w.entries, entry)

	return size, nil
}

// inspect identifies and sizes the message at the start of msg without reading past it.
func (w *Writer) inspect(msg []byte) (section.IndexEntry, error) {
	ht := w.schema.HeaderTraits()
	if len(msg) < ht.Size {
		return section.IndexEntry{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrTruncatedMessage, len(msg), ht.Size)
	}

	hdr := view.NewHeader(view.NewBytes(msg, w.engine), ht)
	if hdr.SchemaID() != w.schema.ID {
		return section.IndexEntry{}, fmt.Errorf("%w: message schema id %d, capture schema id %d", errs.ErrSchemaMismatch, hdr.SchemaID(), w.schema.ID)
	}

	t, ok := w.schema.MessageByID(hdr.TemplateID())
	if !ok {
		return section.IndexEntry{}, fmt.Errorf("%w: %d", errs.ErrUnknownTemplate, hdr.TemplateID())
	}

	res := visit.SizeBytesChecked(view.NewMessage(msg, t), len(msg))
	if !res.Valid {
		return section.IndexEntry{}, fmt.Errorf("%w: %s, %d of %d bytes validated", errs.ErrInvalidMessage, t.Name, res.Size, len(msg))
	}

	return section.IndexEntry{
		TemplateID:  t.ID,
		SchemaID:    hdr.SchemaID(),
		Version:     hdr.Version(),
		BlockLength: uint16(hdr.BlockLength()), //nolint: gosec
		Size:        uint32(res.Size),          //nolint: gosec
	}, nil
}

// AppendAll appends the messages stored back to back in buf. It stops at the first message
// that cannot be appended.
//
// Returns:
//   - int: number of bytes consumed by the appended messages
//   - error: the error of the first failing message
func (w *Writer) AppendAll(buf []byte) (int, error) {
	c := view.NewCursor(view.NewBytes(buf, w.engine))
	for c.Remaining() > 0 {
		size, err := w.Append(c.Bytes().Raw())
		if err != nil {
			return c.Pos(), fmt.Errorf("message at offset %d: %w", c.Pos(), err)
		}
		c.Advance(size)
	}

	return c.Pos(), nil
}

// Encode builds a message of type t in a zeroed scratch buffer and appends it. The header
// is filled before fill runs. Bounds violations raised while filling are returned as
// errors instead of panicking.
func (w *Writer) Encode(t *traits.Message, fill func(m view.Message) error) (int, error) {
	if w.finished {
		return 0, errs.ErrWriterFinished
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	m := view.NewMessage(scratch.Zeroed(w.maxMessageSize), t)
	if err := fillMessage(m, fill); err != nil {
		return 0, fmt.Errorf("encode %s: %w", t.Name, err)
	}

	return w.Append(m.View().Buffer())
}

func fillMessage(m view.Message, fill func(m view.Message) error) (err error) {
	defer check.Recover(&err)
	m.FillHeader()

	return fill(m)
}

// Finish compresses the payload and returns the capture. The writer cannot accept more
// messages until Reset is called.
//
// Returns:
//   - []byte: the capture blob, owned by the caller
//   - error: errs.ErrEmptyCapture without messages, compression errors
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	if len(w.entries) == 0 {
		return nil, errs.ErrEmptyCapture
	}

	packed, err := w.codec.Compress(w.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	count := len(w.entries)
	indexSize := count * section.IndexEntrySize
	w.header.MessageCount = uint32(count)                                  //nolint: gosec
	w.header.PayloadOffset = uint32(section.IndexOffsetOffset + indexSize) //nolint: gosec
	w.header.PayloadSize = uint32(w.payload.Len())                         //nolint: gosec

	out := make([]byte, section.HeaderSize+indexSize+len(packed))
	w.header.WriteToSlice(out)
	pos := section.IndexOffsetOffset
	for i := range w.entries {
		pos = w.entries[i].WriteToSlice(out, pos, w.engine)
	}
	copy(out[pos:], packed)

	w.logger.Info().
		Int("messages", count).
		Int("payload", w.payload.Len()).
		Int("size", len(out)).
		Str("compression", w.header.Flag.Compression().String()).
		Int("rejected", w.rejected).
		Msg("capture finished")

	pool.PutPayloadBuffer(w.payload)
	w.payload = nil
	w.finished = true

	return out, nil
}

// Reset discards the accepted messages and readies the writer for a new capture created at
// the current time.
func (w *Writer) Reset() {
	if w.payload == nil {
		w.payload = pool.GetPayloadBuffer()
	} else {
		w.payload.Reset()
	}
	w.entries = w.entries[:0]
	w.rejected = 0
	w.header.CreatedAt = time.Now().UnixMicro()
	w.finished = false
}
