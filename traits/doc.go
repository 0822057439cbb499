// Package traits defines the descriptors that tell views how a schema lays out its bytes.
//
// A schema compiler emits one descriptor per schema element: *Type for primitive fields and
// arrays, *Enum and *Set for enumerations and bitsets, *Composite for fixed multi-field
// types, *Message, *Group and *Data for the variable structure of messages. Descriptors are
// plain values, linked to each other (a message to its header, a group to its dimension, a
// field to its value type) and safe for concurrent read-only use once built.
//
// Every descriptor implements Descriptor, so generic code such as the visit package can walk
// a message by reading Kind alone:
//
//	for _, f := range msg.Fields {
//		switch f.Value.Kind() {
//		case traits.KindType:
//			...
//		case traits.KindComposite:
//			...
//		}
//	}
//
// Descriptors are trusted. Apart from the registry indexing done by Schema.Compile, no
// consistency checks are made; a descriptor whose offsets disagree with its sizes produces
// views that read the wrong bytes.
package traits
