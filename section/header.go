package section

import (
	"time"

	"github.com/arloliu/sbeview/errs"
)

// Header is the fixed-size section at the start of a capture.
type Header struct {
	// Flag is a packed field for the magic number, byte order and compression.
	Flag Flag // byte offset 0-3
	// SchemaID is the id of the schema the captured messages belong to.
	SchemaID uint16 // byte offset 4-5
	// SchemaVersion is the schema version the writer was built against.
	SchemaVersion uint16 // byte offset 6-7
	// CreatedAt is the creation time in unix microseconds.
	CreatedAt int64 // byte offset 8-15
	// MessageCount is the number of messages in the capture.
	MessageCount uint32 // byte offset 16-19
	// IndexOffset is the byte offset of the index section.
	IndexOffset uint32 // byte offset 20-23
	// PayloadOffset is the byte offset of the payload section, right after the index.
	PayloadOffset uint32 // byte offset 24-27
	// PayloadSize is the size of the payload before compression.
	PayloadSize uint32 // byte offset 28-31
}

// NewHeader creates a Header for a capture created at createdAt.
// The message count and offsets are set when the writer finishes.
func NewHeader(schemaID, schemaVersion uint16, createdAt time.Time) *Header {
	return &Header{
		Flag:          NewFlag(),
		SchemaID:      schemaID,
		SchemaVersion: schemaVersion,
		CreatedAt:     createdAt.UnixMicro(),
		IndexOffset:   IndexOffsetOffset,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, flag validation errors, or
//     ErrCorruptCapture if the offsets are inconsistent
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian; it selects the byte order of everything else.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.Reserved = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.SchemaID = engine.Uint16(data[4:6])
	h.SchemaVersion = engine.Uint16(data[6:8])
	h.CreatedAt = int64(engine.Uint64(data[8:16])) //nolint: gosec
	h.MessageCount = engine.Uint32(data[16:20])
	h.IndexOffset = engine.Uint32(data[20:24])
	h.PayloadOffset = engine.Uint32(data[24:28])
	h.PayloadSize = engine.Uint32(data[28:32])

	if h.IndexOffset != IndexOffsetOffset || h.MessageCount > MaxMessageCount ||
		uint64(h.PayloadOffset) != uint64(h.IndexOffset)+uint64(h.MessageCount)*IndexEntrySize {
		return errs.ErrCorruptCapture
	}

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice writes the header into the first HeaderSize bytes of b.
func (h *Header) WriteToSlice(b []byte) {
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.Reserved

	engine := h.Flag.GetEndianEngine()
	engine.PutUint16(b[4:6], h.SchemaID)
	engine.PutUint16(b[6:8], h.SchemaVersion)
	engine.PutUint64(b[8:16], uint64(h.CreatedAt)) //nolint: gosec
	engine.PutUint32(b[16:20], h.MessageCount)
	engine.PutUint32(b[20:24], h.IndexOffset)
	engine.PutUint32(b[24:28], h.PayloadOffset)
	engine.PutUint32(b[28:32], h.PayloadSize)
}

// CreatedAtAsTime returns the creation time as a time.Time.
func (h *Header) CreatedAtAsTime() time.Time {
	return time.UnixMicro(h.CreatedAt)
}

// ParseHeader parses a Header from the start of data.
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize, flag validation errors or ErrCorruptCapture
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
