package format

import "strings"

type (
	Primitive       uint8
	Presence        uint8
	ByteOrder       uint8
	EOSMode         uint8
	CompressionType uint8
)

const (
	PrimitiveNone Primitive = iota // PrimitiveNone marks an unset primitive.
	Char                           // Char is a single-byte character.
	Int8                           // Int8 is a signed 8-bit integer.
	Uint8                          // Uint8 is an unsigned 8-bit integer.
	Int16                          // Int16 is a signed 16-bit integer.
	Uint16                         // Uint16 is an unsigned 16-bit integer.
	Int32                          // Int32 is a signed 32-bit integer.
	Uint32                         // Uint32 is an unsigned 32-bit integer.
	Int64                          // Int64 is a signed 64-bit integer.
	Uint64                         // Uint64 is an unsigned 64-bit integer.
	Float                          // Float is an IEEE-754 single precision number.
	Double                         // Double is an IEEE-754 double precision number.
)

const (
	PresenceRequired Presence = 0x0 // PresenceRequired fields always carry a value.
	PresenceOptional Presence = 0x1 // PresenceOptional fields use a null sentinel for "no value".
	PresenceConstant Presence = 0x2 // PresenceConstant fields are not encoded on the wire.

	LittleEndian ByteOrder = 0x0 // LittleEndian is the SBE default byte order.
	BigEndian    ByteOrder = 0x1 // BigEndian is the network byte order.

	EOSAll    EOSMode = 0x0 // EOSAll pads the remainder with NUL bytes.
	EOSSingle EOSMode = 0x1 // EOSSingle writes one NUL terminator when it fits.
	EOSNone   EOSMode = 0x2 // EOSNone never writes a terminator.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Size returns the encoded size of the primitive in bytes, or 0 for PrimitiveNone.
func (p Primitive) Size() int {
	switch p {
	case Char, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float:
		return 4
	case Int64, Uint64, Double:
		return 8
	default:
		return 0
	}
}

// IsSigned reports whether the primitive is a signed integer.
func (p Primitive) IsSigned() bool {
	return p == Int8 || p == Int16 || p == Int32 || p == Int64
}

// IsFloat reports whether the primitive is a floating point type.
func (p Primitive) IsFloat() bool {
	return p == Float || p == Double
}

func (p Primitive) String() string {
	switch p {
	case Char:
		return "char"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "Unknown"
	}
}

// ParsePrimitive maps an SBE primitive type name to a Primitive.
func ParsePrimitive(name string) (Primitive, bool) {
	for p := Char; p <= Double; p++ {
		if p.String() == name {
			return p, true
		}
	}

	return PrimitiveNone, false
}

func (p Presence) String() string {
	switch p {
	case PresenceRequired:
		return "required"
	case PresenceOptional:
		return "optional"
	case PresenceConstant:
		return "constant"
	default:
		return "Unknown"
	}
}

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "littleEndian"
	case BigEndian:
		return "bigEndian"
	default:
		return "Unknown"
	}
}

// ParseByteOrder accepts the SBE schema spelling and the short forms "little" and "big".
func ParseByteOrder(s string) (ByteOrder, bool) {
	switch strings.ToLower(s) {
	case "", "little", "littleendian":
		return LittleEndian, true
	case "big", "bigendian":
		return BigEndian, true
	default:
		return LittleEndian, false
	}
}

func (e EOSMode) String() string {
	switch e {
	case EOSAll:
		return "All"
	case EOSSingle:
		return "Single"
	case EOSNone:
		return "None"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive codec name to a CompressionType.
func ParseCompression(s string) (CompressionType, bool) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return CompressionNone, false
	}
}
