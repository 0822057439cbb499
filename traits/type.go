package traits

import (
	"math"

	"github.com/arloliu/sbeview/format"
)

// Type describes a primitive field, a fixed-length array of primitives, or a constant.
type Type struct {
	Attrs
	Primitive         format.Primitive
	Presence          format.Presence
	Length            int // Length is the element count; 0 and 1 both mean a scalar.
	CharacterEncoding string
	// Null, Min and Max override the built-in limits. Values are raw wire bits of the
	// primitive, zero-extended to 64 bits (see IntBits and FloatBits).
	Null, Min, Max *uint64
	// Constant is the textual value of a constant-presence type.
	Constant string
}

var _ Descriptor = (*Type)(nil)

func (t *Type) Kind() Kind { return KindType }

// SizeBytes returns the encoded size. Constants occupy no bytes.
func (t *Type) SizeBytes() int {
	if t.Presence == format.PresenceConstant {
		return 0
	}

	return t.Primitive.Size() * t.ArrayLength()
}

// ArrayLength returns the number of elements, at least 1.
func (t *Type) ArrayLength() int {
	if t.Length < 1 {
		return 1
	}

	return t.Length
}

// IsArray reports whether the type is a fixed array of more than one element.
func (t *Type) IsArray() bool {
	return t.Length > 1
}

// NullBits returns the null sentinel as raw wire bits.
func (t *Type) NullBits() uint64 {
	if t.Null != nil {
		return *t.Null
	}

	return BuiltinNull(t.Primitive)
}

// MinBits returns the minimum valid value as raw wire bits.
func (t *Type) MinBits() uint64 {
	if t.Min != nil {
		return *t.Min
	}

	return BuiltinMin(t.Primitive)
}

// MaxBits returns the maximum valid value as raw wire bits.
func (t *Type) MaxBits() uint64 {
	if t.Max != nil {
		return *t.Max
	}

	return BuiltinMax(t.Primitive)
}

// Mask returns the bit mask covering the encoded width of p.
func Mask(p format.Primitive) uint64 {
	size := p.Size()
	if size >= 8 {
		return math.MaxUint64
	}

	return 1<<(uint(size)*8) - 1
}

// IntBits returns the wire bits of the integer v encoded as p.
func IntBits(p format.Primitive, v int64) uint64 {
	return uint64(v) & Mask(p) //nolint: gosec
}

// FloatBits returns the wire bits of v encoded as p, which must be Float or Double.
func FloatBits(p format.Primitive, v float64) uint64 {
	if p == format.Float {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(v)
}

// BuiltinNull returns the SBE null sentinel of p: the minimum for signed integers, the
// maximum for unsigned integers, 0 for char and a quiet NaN for floating point.
func BuiltinNull(p format.Primitive) uint64 {
	switch p {
	case format.Char:
		return 0
	case format.Int8:
		return IntBits(p, math.MinInt8)
	case format.Int16:
		return IntBits(p, math.MinInt16)
	case format.Int32:
		return IntBits(p, math.MinInt32)
	case format.Int64:
		return IntBits(p, math.MinInt64)
	case format.Uint8, format.Uint16, format.Uint32, format.Uint64:
		return Mask(p)
	case format.Float:
		return 0x7FC00000
	case format.Double:
		return 0x7FF8000000000000
	default:
		return 0
	}
}

// BuiltinMin returns the SBE minimum valid value of p.
func BuiltinMin(p format.Primitive) uint64 {
	switch p {
	case format.Char:
		return 0x20
	case format.Int8:
		return IntBits(p, math.MinInt8+1)
	case format.Int16:
		return IntBits(p, math.MinInt16+1)
	case format.Int32:
		return IntBits(p, math.MinInt32+1)
	case format.Int64:
		return IntBits(p, math.MinInt64+1)
	case format.Float:
		return 0x00800000
	case format.Double:
		return 0x0010000000000000
	default:
		return 0
	}
}

// BuiltinMax returns the SBE maximum valid value of p.
func BuiltinMax(p format.Primitive) uint64 {
	switch p {
	case format.Char:
		return 0x7E
	case format.Int8:
		return math.MaxInt8
	case format.Int16:
		return math.MaxInt16
	case format.Int32:
		return math.MaxInt32
	case format.Int64:
		return math.MaxInt64
	case format.Uint8, format.Uint16, format.Uint32, format.Uint64:
		return Mask(p) - 1
	case format.Float:
		return FloatBits(p, math.MaxFloat32)
	case format.Double:
		return math.Float64bits(math.MaxFloat64)
	default:
		return 0
	}
}
