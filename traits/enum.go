package traits

import "github.com/arloliu/sbeview/format"

// EnumValue is one named value of an enumeration.
type EnumValue struct {
	Attrs
	Value uint64 // Value is the raw encoded value, zero-extended.
}

// UnknownEnumValue is returned by Enum.Lookup for raw values the schema does not declare.
var UnknownEnumValue = &EnumValue{Attrs: Attrs{Name: "UNKNOWN"}}

// Enum describes an enumeration encoded as an integer or char primitive.
type Enum struct {
	Attrs
	Encoding format.Primitive
	Presence format.Presence
	Values   []*EnumValue
}

var _ Descriptor = (*Enum)(nil)

func (e *Enum) Kind() Kind     { return KindEnum }
func (e *Enum) SizeBytes() int { return e.Encoding.Size() }

// Lookup returns the value declared for raw, or UnknownEnumValue.
func (e *Enum) Lookup(raw uint64) *EnumValue {
	for _, v := range e.Values {
		if v.Value == raw {
			return v
		}
	}

	return UnknownEnumValue
}

// ValueByName returns the value with the given name.
func (e *Enum) ValueByName(name string) (*EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}

	return nil, false
}

// Choice is one named bit of a set.
type Choice struct {
	Attrs
	Bit uint // Bit is the zero-based bit index.
}

// Set describes a bitset encoded as an unsigned integer primitive.
type Set struct {
	Attrs
	Encoding format.Primitive
	Choices  []*Choice
}

var _ Descriptor = (*Set)(nil)

func (s *Set) Kind() Kind     { return KindSet }
func (s *Set) SizeBytes() int { return s.Encoding.Size() }

// ChoiceByName returns the choice with the given name.
func (s *Set) ChoiceByName(name string) (*Choice, bool) {
	for _, c := range s.Choices {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}
