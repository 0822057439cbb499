package section

import (
	"math"
)

const (
	// Bit masks of the Options field.
	ReservedMask    = 0x0001 // Mask for reserved bit (bit 0)
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBits    = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicCaptureV1Opt is the version 1 magic number of the capture format.
	MagicCaptureV1Opt = 0xEC10
)

// Offsets and section sizes in the capture blob.
const (
	HeaderSize        = 32             // fixed header size in bytes
	IndexEntrySize    = 16             // fixed index entry size in bytes
	IndexOffsetOffset = HeaderSize     // byte offset where the index section starts
	MaxPayloadSize    = math.MaxUint32 // maximum uncompressed payload size
	MaxMessageCount   = math.MaxUint32 / IndexEntrySize
)
