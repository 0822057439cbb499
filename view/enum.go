package view

import (
	"iter"
	"strconv"
	"strings"

	"github.com/arloliu/sbeview/traits"
)

// Enum is a view of an enumeration field.
type Enum struct {
	b Bytes
	t *traits.Enum
}

// NewEnum returns an enum view at b described by t.
func NewEnum(b Bytes, t *traits.Enum) Enum {
	return Enum{b: b, t: t}
}

// View returns the underlying view.
func (e Enum) View() Bytes { return e.b }

// Traits returns the descriptor.
func (e Enum) Traits() *traits.Enum { return e.t }

// Raw returns the encoded value.
func (e Enum) Raw() uint64 {
	return getBits(e.b, 0, e.t.Encoding)
}

// SetRaw writes the encoded value.
func (e Enum) SetRaw(v uint64) {
	putBits(e.b, 0, e.t.Encoding, v)
}

// Set writes a declared value.
func (e Enum) Set(v *traits.EnumValue) {
	e.SetRaw(v.Value)
}

// Value returns the declared value, or traits.UnknownEnumValue.
func (e Enum) Value() *traits.EnumValue {
	return e.t.Lookup(e.Raw())
}

// Known reports whether the encoded value is declared by the schema.
func (e Enum) Known() bool {
	return e.Value() != traits.UnknownEnumValue
}

// IsNull reports whether the field holds the null sentinel of its encoding.
func (e Enum) IsNull() bool {
	return e.Raw() == traits.BuiltinNull(e.t.Encoding)
}

// String returns the value name, or UNKNOWN(<raw>) for undeclared values.
func (e Enum) String() string {
	raw := e.Raw()
	if v := e.t.Lookup(raw); v != traits.UnknownEnumValue {
		return v.Name
	}

	return traits.UnknownEnumValue.Name + "(" + strconv.FormatUint(raw, 10) + ")"
}

// Set is a view of a bitset field. Bits without a declared choice are preserved by every
// write.
type Set struct {
	b Bytes
	t *traits.Set
}

// NewSet returns a set view at b described by t.
func NewSet(b Bytes, t *traits.Set) Set {
	return Set{b: b, t: t}
}

// View returns the underlying view.
func (s Set) View() Bytes { return s.b }

// Traits returns the descriptor.
func (s Set) Traits() *traits.Set { return s.t }

// Raw returns the encoded bits.
func (s Set) Raw() uint64 {
	return getBits(s.b, 0, s.t.Encoding)
}

// SetRaw writes the encoded bits.
func (s Set) SetRaw(v uint64) {
	putBits(s.b, 0, s.t.Encoding, v)
}

// Bit reports whether bit i is set.
func (s Set) Bit(i uint) bool {
	return s.Raw()&(1<<i) != 0
}

// SetBit sets or clears bit i.
func (s Set) SetBit(i uint, on bool) {
	raw := s.Raw()
	if on {
		raw |= 1 << i
	} else {
		raw &^= 1 << i
	}
	s.SetRaw(raw)
}

// Has reports whether the named choice is set. Unknown names report false.
func (s Set) Has(name string) bool {
	c, ok := s.t.ChoiceByName(name)
	return ok && s.Bit(c.Bit)
}

// Choices yields every declared choice with its state, in declaration order.
func (s Set) Choices() iter.Seq2[*traits.Choice, bool] {
	return func(yield func(*traits.Choice, bool) bool) {
		raw := s.Raw()
		for _, c := range s.t.Choices {
			if !yield(c, raw&(1<<c.Bit) != 0) {
				return
			}
		}
	}
}

// String renders the set choices, e.g. "{Active, Hidden}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for c, on := range s.Choices() {
		if !on {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
		first = false
	}
	sb.WriteByte('}')

	return sb.String()
}
