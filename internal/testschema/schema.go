// Package testschema holds descriptors and typed accessors in the shape a schema compiler
// emits, for a small market data schema used throughout the tests.
package testschema

import (
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/traits"
)

// Schema identity.
const (
	SchemaID      = 42
	SchemaVersion = 2
)

var (
	PriceTraits = &traits.Composite{
		Attrs: traits.Attrs{Name: "Price"},
		Size:  9,
		Elements: []*traits.Field{
			{Attrs: traits.Attrs{Name: "mantissa"}, Offset: 0, Value: &traits.Type{Attrs: traits.Attrs{Name: "int64"}, Primitive: format.Int64}},
			{Attrs: traits.Attrs{Name: "exponent"}, Offset: 8, Value: &traits.Type{Attrs: traits.Attrs{Name: "int8"}, Primitive: format.Int8}},
		},
	}

	SideTraits = &traits.Enum{
		Attrs:    traits.Attrs{Name: "Side"},
		Encoding: format.Uint8,
		Values: []*traits.EnumValue{
			{Attrs: traits.Attrs{Name: "Buy"}, Value: 0},
			{Attrs: traits.Attrs{Name: "Sell"}, Value: 1},
		},
	}

	FlagsTraits = &traits.Set{
		Attrs:    traits.Attrs{Name: "Flags"},
		Encoding: format.Uint8,
		Choices: []*traits.Choice{
			{Attrs: traits.Attrs{Name: "Active"}, Bit: 0},
			{Attrs: traits.Attrs{Name: "Hidden"}, Bit: 1},
		},
	}

	QuantityTraits = &traits.Type{Attrs: traits.Attrs{Name: "Quantity"}, Primitive: format.Int32, Presence: format.PresenceOptional}
	SymbolTraits   = &traits.Type{Attrs: traits.Attrs{Name: "Symbol"}, Primitive: format.Char, Length: 8}
	VenueTraits    = &traits.Type{Attrs: traits.Attrs{Name: "Venue"}, Primitive: format.Char, Presence: format.PresenceConstant, Length: 4, Constant: "XNYS"}

	FillsTraits = &traits.Group{
		Attrs:       traits.Attrs{Name: "fills"},
		ID:          10,
		BlockLength: 12,
		Fields: []*traits.Field{
			{Attrs: traits.Attrs{Name: "px"}, ID: 11, Offset: 0, Value: &traits.Type{Primitive: format.Int64}},
			{Attrs: traits.Attrs{Name: "qty"}, ID: 12, Offset: 8, Value: &traits.Type{Primitive: format.Uint32}},
		},
	}

	AllocsTraits = &traits.Group{
		Attrs:       traits.Attrs{Name: "allocs"},
		ID:          21,
		BlockLength: 4,
		Fields: []*traits.Field{
			{Attrs: traits.Attrs{Name: "account"}, ID: 22, Offset: 0, Value: &traits.Type{Primitive: format.Uint32}},
		},
	}

	MemoTraits = &traits.Data{Attrs: traits.Attrs{Name: "memo"}, ID: 23, Length: format.Uint8, Value: format.Char}

	LegsTraits = &traits.Group{
		Attrs:       traits.Attrs{Name: "legs"},
		ID:          20,
		BlockLength: 4,
		Fields: []*traits.Field{
			{Attrs: traits.Attrs{Name: "ratio"}, ID: 24, Offset: 0, Value: &traits.Type{Primitive: format.Int32}},
		},
		Groups: []*traits.Group{AllocsTraits},
		Data:   []*traits.Data{MemoTraits},
	}

	NoteTraits = &traits.Data{Attrs: traits.Attrs{Name: "note"}, ID: 30, Length: format.Uint16, Value: format.Uint8}
	TagTraits  = &traits.Data{Attrs: traits.Attrs{Name: "tag"}, ID: 31, Length: format.Uint8, Value: format.Char}

	OrderTraits = &traits.Message{
		Attrs:       traits.Attrs{Name: "Order"},
		ID:          1,
		BlockLength: 31,
		Fields: []*traits.Field{
			{Attrs: traits.Attrs{Name: "orderId"}, ID: 1, Offset: 0, Value: &traits.Type{Primitive: format.Uint64}},
			{Attrs: traits.Attrs{Name: "price"}, ID: 2, Offset: 8, Value: PriceTraits},
			{Attrs: traits.Attrs{Name: "side"}, ID: 3, Offset: 17, Value: SideTraits},
			{Attrs: traits.Attrs{Name: "flags"}, ID: 4, Offset: 18, Value: FlagsTraits},
			{Attrs: traits.Attrs{Name: "quantity"}, ID: 5, Offset: 19, Value: QuantityTraits},
			{Attrs: traits.Attrs{Name: "symbol"}, ID: 6, Offset: 23, Value: SymbolTraits},
			{Attrs: traits.Attrs{Name: "venue"}, ID: 7, Offset: 31, Value: VenueTraits},
		},
		Groups: []*traits.Group{FillsTraits, LegsTraits},
		Data:   []*traits.Data{NoteTraits, TagTraits},
	}

	PayloadTraits = &traits.Data{Attrs: traits.Attrs{Name: "payload"}, ID: 2, Length: format.Uint32, Value: format.Uint8}

	SimpleTraits = &traits.Message{
		Attrs:       traits.Attrs{Name: "Simple"},
		ID:          2,
		BlockLength: 8,
		Fields: []*traits.Field{
			{Attrs: traits.Attrs{Name: "value"}, ID: 1, Offset: 0, Value: &traits.Type{Primitive: format.Int32}},
		},
		Data: []*traits.Data{PayloadTraits},
	}

	Market = &traits.Schema{
		Package:   "market",
		ID:        SchemaID,
		Version:   SchemaVersion,
		ByteOrder: format.LittleEndian,
		Messages:  []*traits.Message{OrderTraits, SimpleTraits},
	}
)

func init() {
	if err := Market.Compile(); err != nil {
		panic(err)
	}
}
