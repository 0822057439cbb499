package section

import (
	"github.com/arloliu/sbeview/endian"
	"github.com/arloliu/sbeview/errs"
)

// IndexEntry locates one message in the uncompressed payload. It is a fixed size of 16
// bytes.
type IndexEntry struct {
	// TemplateID is the message template id copied from the message header.
	//
	// Offset: 0, Size: 2 bytes
	TemplateID uint16

	// SchemaID is the schema id copied from the message header.
	//
	// Offset: 2, Size: 2 bytes
	SchemaID uint16

	// Version is the schema version copied from the message header.
	//
	// Offset: 4, Size: 2 bytes
	Version uint16

	// BlockLength is the root block length copied from the message header.
	//
	// Offset: 6, Size: 2 bytes
	BlockLength uint16

	// Offset is the absolute position of the message in the uncompressed payload.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Size is the validated encoded size of the message.
	//
	// Offset: 12, Size: 4 bytes
	Size uint32
}

// End returns the payload position one past the message.
func (e IndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Size)
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 16)
func (e *IndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint16(data[offset:offset+2], e.TemplateID)
	engine.PutUint16(data[offset+2:offset+4], e.SchemaID)
	engine.PutUint16(data[offset+4:offset+6], e.Version)
	engine.PutUint16(data[offset+6:offset+8], e.BlockLength)
	engine.PutUint32(data[offset+8:offset+12], e.Offset)
	engine.PutUint32(data[offset+12:offset+16], e.Size)

	return offset + IndexEntrySize
}

// ParseIndexEntry parses an IndexEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing index entry (must be at least 16 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - IndexEntry: Parsed index entry
//   - error: ErrInvalidIndexEntrySize if data is too short
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return IndexEntry{
		TemplateID:  engine.Uint16(data[0:2]),
		SchemaID:    engine.Uint16(data[2:4]),
		Version:     engine.Uint16(data[4:6]),
		BlockLength: engine.Uint16(data[6:8]),
		Offset:      engine.Uint32(data[8:12]),
		Size:        engine.Uint32(data[12:16]),
	}, nil
}
