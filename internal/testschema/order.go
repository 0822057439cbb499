package testschema

import (
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/view"
)

var quantityLimits = view.LimitsFor[int32](QuantityTraits)

// Order is the typed view of the Order message.
type Order struct {
	view.Message
}

// NewOrder returns an Order view at the start of buf.
func NewOrder(buf []byte) Order {
	return Order{view.NewMessage(buf, OrderTraits)}
}

func (o Order) OrderID() view.Required[uint64] {
	return view.NewRequired[uint64](o.Field(0), nil)
}

func (o Order) Price() Price {
	return Price{view.NewComposite(o.Field(1), PriceTraits)}
}

func (o Order) Side() view.Enum {
	return view.NewEnum(o.Field(2), SideTraits)
}

func (o Order) Flags() view.Set {
	return view.NewSet(o.Field(3), FlagsTraits)
}

func (o Order) Quantity() view.Optional[int32] {
	return view.NewOptional(o.Field(4), &quantityLimits)
}

func (o Order) Symbol() view.CharArray {
	return view.NewCharArray(o.Field(5), 8)
}

func (o Order) Fills() view.Group { return o.Group(0) }
func (o Order) Legs() view.Group  { return o.Group(1) }
func (o Order) Note() view.Data   { return o.Data(0) }
func (o Order) Tag() view.Data    { return o.Data(1) }

// Price is the typed view of the Price composite.
type Price struct {
	view.Composite
}

func (p Price) Mantissa() view.Required[int64] {
	return view.NewRequired[int64](p.Field(0), nil)
}

func (p Price) Exponent() view.Required[int8] {
	return view.NewRequired[int8](p.Field(1), nil)
}

// Fill is the typed view of a fills entry.
type Fill struct {
	view.Entry
}

func (f Fill) Px() view.Required[int64]   { return view.NewRequired[int64](f.Field(0), nil) }
func (f Fill) Qty() view.Required[uint32] { return view.NewRequired[uint32](f.Field(1), nil) }

// Leg is the typed view of a legs entry.
type Leg struct {
	view.Entry
}

func (l Leg) Ratio() view.Required[int32] { return view.NewRequired[int32](l.Field(0), nil) }
func (l Leg) Allocs() view.Group          { return l.Group(0) }
func (l Leg) Memo() view.Data             { return l.Data(0) }

// Simple is the typed view of the Simple message.
type Simple struct {
	view.Message
}

// NewSimple returns a Simple view at the start of buf.
func NewSimple(buf []byte) Simple {
	return Simple{view.NewMessage(buf, SimpleTraits)}
}

func (s Simple) Value() view.Required[int32] { return view.NewRequired[int32](s.Field(0), nil) }
func (s Simple) Payload() view.Data          { return s.Data(0) }

// SampleOrderSize is the encoded size of the message written by WriteSampleOrder.
const SampleOrderSize = 118

// WriteSampleOrder encodes a fixed Order into buf, which must be zeroed and at least
// SampleOrderSize bytes long plus room for the intermediate shifts.
func WriteSampleOrder(buf []byte) Order {
	o := NewOrder(buf)
	o.FillHeader()
	o.OrderID().Set(1001)
	o.Price().Mantissa().Set(12345)
	o.Price().Exponent().Set(-2)
	o.Side().SetRaw(1)
	o.Flags().SetBit(0, true)
	o.Quantity().Set(500)
	o.Symbol().AssignString("ACME", format.EOSAll)

	o.Fills().Resize(2)
	for i, px := range []int64{100, 101} {
		f := Fill{o.Fills().Entry(i)}
		f.Px().Set(px)
		f.Qty().Set(uint32(5 + 2*i)) //nolint: gosec
	}

	o.Legs().Resize(2)
	leg := Leg{o.Legs().Front()}
	leg.Ratio().Set(1)
	leg.Allocs().Resize(2)
	view.Put[uint32](leg.Allocs().Entry(0).Field(0), 0, 11)
	view.Put[uint32](leg.Allocs().Entry(1).Field(0), 0, 12)
	leg.Memo().AssignString("hedge", format.EOSNone)

	for i, e := range o.Legs().All() {
		if i == 1 {
			Leg{e}.Ratio().Set(-2)
		}
	}

	o.Note().AssignString("first order", format.EOSNone)
	o.Tag().AssignString("T1", format.EOSNone)

	return o
}

// WriteSimple encodes a Simple message with the given value and payload.
func WriteSimple(buf []byte, value int32, payload []byte) Simple {
	s := NewSimple(buf)
	s.FillHeader()
	s.Value().Set(value)
	s.Payload().Assign(payload)

	return s
}
