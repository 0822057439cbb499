package traits

// Kind identifies the concrete descriptor type.
type Kind uint8

const (
	KindType      Kind = 0x1 // KindType is a primitive field or fixed array (*Type).
	KindEnum      Kind = 0x2 // KindEnum is an enumeration (*Enum).
	KindSet       Kind = 0x3 // KindSet is a bitset (*Set).
	KindComposite Kind = 0x4 // KindComposite is a fixed multi-field type (*Composite).
	KindMessage   Kind = 0x5 // KindMessage is a message (*Message).
	KindGroup     Kind = 0x6 // KindGroup is a repeating group (*Group).
	KindData      Kind = 0x7 // KindData is a variable-length data field (*Data).
)

// Variable is the SizeBytes of descriptors whose encoded size depends on the buffer.
const Variable = -1

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindEnum:
		return "enum"
	case KindSet:
		return "set"
	case KindComposite:
		return "composite"
	case KindMessage:
		return "message"
	case KindGroup:
		return "group"
	case KindData:
		return "data"
	default:
		return "Unknown"
	}
}

// Attrs holds the attributes every schema element carries.
type Attrs struct {
	Name         string
	Description  string
	SinceVersion uint16
	Deprecated   uint16 // Deprecated is the version the element was deprecated in, 0 if never.
	SemanticType string
}

// Attributes returns a. Embedding Attrs gives a descriptor this method.
func (a *Attrs) Attributes() *Attrs {
	return a
}

// Descriptor is implemented by every schema element descriptor.
type Descriptor interface {
	Kind() Kind
	Attributes() *Attrs
	// SizeBytes returns the fixed encoded size, or Variable.
	SizeBytes() int
}
