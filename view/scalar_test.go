package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/internal/testschema"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
)

func TestPrimitiveView(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))
	fields := testschema.OrderTraits.Fields

	qty := view.NewPrimitive(o.Field(4), fields[4].Value.(*traits.Type))
	require.Equal(t, int64(500), qty.Int64())
	require.Equal(t, 500.0, qty.Float64())
	require.False(t, qty.IsNull())
	require.True(t, qty.InRange())
	require.Equal(t, "500", qty.String())

	o.Quantity().Clear()
	require.True(t, qty.IsNull())
	require.Equal(t, "null", qty.String())

	symbol := view.NewPrimitive(o.Field(5), testschema.SymbolTraits)
	require.Equal(t, 8, symbol.Len())
	require.Equal(t, "ACME", symbol.String())
	require.Equal(t, uint64('C'), symbol.Bits(1))

	venue := view.NewPrimitive(o.Field(6), testschema.VenueTraits)
	require.True(t, venue.IsConstant())
	require.Equal(t, "XNYS", venue.String())
	require.Nil(t, venue.Raw())
	require.Equal(t, uint64('N'), venue.Bits(1))

	exp := view.NewPrimitive(o.Price().Field(1), testschema.PriceTraits.Elements[1].Value.(*traits.Type))
	require.Equal(t, int64(-2), exp.Int64())
	require.Equal(t, uint64(0xFE), exp.Uint64())
	require.Equal(t, "-2", exp.String())

	got := captureViolations(t)
	require.Equal(t, uint64(0), exp.Bits(1))
	require.ErrorIs(t, (*got)[0], errs.ErrIndexOutOfRange)
}

func TestEnumView(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	side := o.Side()
	require.Equal(t, "Sell", side.String())
	require.True(t, side.Known())
	require.Equal(t, uint64(1), side.Value().Value)

	buy, _ := testschema.SideTraits.ValueByName("Buy")
	side.Set(buy)
	require.Equal(t, uint64(0), side.Raw())

	side.SetRaw(7)
	require.False(t, side.Known())
	require.Same(t, traits.UnknownEnumValue, side.Value())
	require.Equal(t, "UNKNOWN(7)", side.String())
	require.False(t, side.IsNull())

	side.SetRaw(255)
	require.True(t, side.IsNull())
}

func TestSetView(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	flags := o.Flags()
	require.True(t, flags.Has("Active"))
	require.False(t, flags.Has("Hidden"))
	require.False(t, flags.Has("Missing"))
	require.Equal(t, "{Active}", flags.String())

	flags.SetRaw(0x86)
	require.Equal(t, "{Hidden}", flags.String())

	flags.SetBit(0, true)
	require.Equal(t, uint64(0x87), flags.Raw())
	require.Equal(t, "{Active, Hidden}", flags.String())

	flags.SetBit(1, false)
	require.Equal(t, uint64(0x85), flags.Raw())

	var names []string
	for c, on := range flags.Choices() {
		if on {
			names = append(names, c.Name)
		}
	}
	require.Equal(t, []string{"Active"}, names)
}
