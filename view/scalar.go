package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/sbeview/check"
	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/traits"
)

// Primitive is a type-erased view of a primitive field or fixed array. Generic code such
// as visitors and renderers uses it where the element type is only known from the
// descriptor. Constant-presence fields read their value from the descriptor.
type Primitive struct {
	b Bytes
	t *traits.Type
}

// NewPrimitive returns a primitive view at b described by t.
func NewPrimitive(b Bytes, t *traits.Type) Primitive {
	return Primitive{b: b, t: t}
}

// View returns the underlying view.
func (p Primitive) View() Bytes { return p.b }

// Traits returns the descriptor.
func (p Primitive) Traits() *traits.Type { return p.t }

// Len returns the number of elements.
func (p Primitive) Len() int {
	if p.IsConstant() && p.t.Primitive == format.Char {
		return len(p.t.Constant)
	}

	return p.t.ArrayLength()
}

// IsConstant reports whether the value comes from the descriptor.
func (p Primitive) IsConstant() bool {
	return p.t.Presence == format.PresenceConstant
}

// Bits returns element i as zero-extended wire bits.
func (p Primitive) Bits(i int) uint64 {
	if uint(i) >= uint(p.Len()) {
		check.Report(&check.Violation{Op: "view.Primitive.Bits", Offset: i, Size: 1, Limit: p.Len(), Err: errs.ErrIndexOutOfRange})
		return 0
	}
	if p.IsConstant() {
		return p.constantBits(i)
	}

	return getBits(p.b, i*p.t.Primitive.Size(), p.t.Primitive)
}

// Uint64 returns element 0 as an unsigned integer.
func (p Primitive) Uint64() uint64 {
	return p.Bits(0)
}

// Int64 returns element 0 sign-extended from its encoded width.
func (p Primitive) Int64() int64 {
	return signExtend(p.Bits(0), p.t.Primitive)
}

// Float64 returns element 0 as a float64. Integer primitives are converted.
func (p Primitive) Float64() float64 {
	return bitsToFloat(p.Bits(0), p.t.Primitive)
}

// Value returns element i as an int64, uint64, float64 or, for chars, a one byte string.
func (p Primitive) Value(i int) any {
	bits := p.Bits(i)
	prim := p.t.Primitive
	switch {
	case prim == format.Char:
		return string([]byte{byte(bits)})
	case prim.IsFloat():
		return bitsToFloat(bits, prim)
	case prim.IsSigned():
		return signExtend(bits, prim)
	default:
		return bits
	}
}

// IsNull reports whether an optional field holds its null sentinel. Required and constant
// fields are never null.
func (p Primitive) IsNull() bool {
	if p.t.Presence != format.PresenceOptional {
		return false
	}

	bits, null := p.Bits(0), p.t.NullBits()
	if bits == null {
		return true
	}
	if p.t.Primitive.IsFloat() {
		return math.IsNaN(bitsToFloat(bits, p.t.Primitive)) && math.IsNaN(bitsToFloat(null, p.t.Primitive))
	}

	return false
}

// InRange reports whether element 0 lies within the descriptor's [min, max].
func (p Primitive) InRange() bool {
	bits := p.Bits(0)
	prim := p.t.Primitive
	switch {
	case prim.IsFloat():
		v := bitsToFloat(bits, prim)
		return v >= bitsToFloat(p.t.MinBits(), prim) && v <= bitsToFloat(p.t.MaxBits(), prim)
	case prim.IsSigned():
		v := signExtend(bits, prim)
		return v >= signExtend(p.t.MinBits(), prim) && v <= signExtend(p.t.MaxBits(), prim)
	default:
		return bits >= p.t.MinBits() && bits <= p.t.MaxBits()
	}
}

// Raw returns the encoded bytes, or nil for constants.
func (p Primitive) Raw() []byte {
	if p.IsConstant() {
		return nil
	}

	return p.b.Slice(0, p.t.SizeBytes())
}

// String renders the value: char arrays as text up to the first NUL, other arrays as a
// bracketed list, null optionals as "null".
func (p Primitive) String() string {
	if p.t.Primitive == format.Char && (p.t.IsArray() || p.IsConstant()) {
		if p.IsConstant() {
			return p.t.Constant
		}
		return CharArray{b: p.b, n: p.t.ArrayLength()}.String()
	}
	if p.IsNull() {
		return "null"
	}
	if !p.t.IsArray() {
		return p.format(0)
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := range p.Len() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.format(i))
	}
	sb.WriteByte(']')

	return sb.String()
}

func (p Primitive) format(i int) string {
	bits := p.Bits(i)
	prim := p.t.Primitive
	switch {
	case prim == format.Char:
		return string(rune(byte(bits)))
	case prim == format.Float:
		return strconv.FormatFloat(bitsToFloat(bits, prim), 'g', -1, 32)
	case prim == format.Double:
		return strconv.FormatFloat(bitsToFloat(bits, prim), 'g', -1, 64)
	case prim.IsSigned():
		return strconv.FormatInt(signExtend(bits, prim), 10)
	default:
		return strconv.FormatUint(bits, 10)
	}
}

func (p Primitive) constantBits(i int) uint64 {
	text := p.t.Constant
	prim := p.t.Primitive
	switch {
	case prim == format.Char:
		if i < len(text) {
			return uint64(text[i])
		}
		return 0
	case prim.IsFloat():
		f, _ := strconv.ParseFloat(text, 64)
		return traits.FloatBits(prim, f)
	case prim.IsSigned():
		v, _ := strconv.ParseInt(text, 0, 64)
		return traits.IntBits(prim, v)
	default:
		v, _ := strconv.ParseUint(text, 0, 64)
		return v & traits.Mask(prim)
	}
}

//nolint: gosec
func signExtend(bits uint64, p format.Primitive) int64 {
	switch p.Size() {
	case 1:
		return int64(int8(bits))
	case 2:
		return int64(int16(bits))
	case 4:
		return int64(int32(bits))
	default:
		return int64(bits)
	}
}

//nolint: gosec
func bitsToFloat(bits uint64, p format.Primitive) float64 {
	switch {
	case p == format.Float:
		return float64(math.Float32frombits(uint32(bits)))
	case p == format.Double:
		return math.Float64frombits(bits)
	case p.IsSigned():
		return float64(signExtend(bits, p))
	default:
		return float64(bits)
	}
}
