package section

import (
	"github.com/arloliu/sbeview/endian"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
)

// Flag is the packed first word of the capture header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is reserved, must be set to 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the format:
	//   - 0xEC10 (0b1110_1100_0001_0000): capture format v1
	Options uint16

	// CompressionType is the codec of the payload section.
	CompressionType uint8

	// Reserved must be 0.
	Reserved uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a Flag for a little-endian capture without compression.
func NewFlag() Flag {
	return Flag{
		Options:         MagicCaptureV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetByteOrder selects the byte order.
func (f *Flag) SetByteOrder(order format.ByteOrder) {
	if order == format.BigEndian {
		f.WithBigEndian()
	} else {
		f.WithLittleEndian()
	}
}

// ByteOrder returns the selected byte order.
func (f Flag) ByteOrder() format.ByteOrder {
	if f.IsBigEndian() {
		return format.BigEndian
	}

	return format.LittleEndian
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicCaptureV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f Flag) IsValidCompression() bool {
	_, ok := validCompressions[f.CompressionType]
	return ok
}

// Validate checks if the flag contains valid values.
//
// Returns:
//   - errs.ErrInvalidMagic for an unknown magic number or set reserved bits
//   - errs.ErrInvalidCompressionType for an unknown codec
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() || f.Options&(ReservedMask|ReservedBits) != 0 || f.Reserved != 0 {
		return errs.ErrInvalidMagic
	}
	if !f.IsValidCompression() {
		return errs.ErrInvalidCompressionType
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
