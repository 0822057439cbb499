package view_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
)

func roundTrip[T view.Number](t *testing.T, values ...T) {
	t.Helper()

	buf := make([]byte, 8)
	o := view.NewOptional[T](view.NewBytes(buf, nil), nil)
	r := view.NewRequired[T](view.NewBytes(buf, nil), nil)
	for _, v := range values {
		o.Set(v)
		got, ok := o.Get()
		require.True(t, ok, "value %v", v)
		require.Equal(t, v, got)
		require.True(t, o.InRange())
		require.Equal(t, v, r.Get())
		require.True(t, r.InRange())
	}

	o.Clear()
	_, ok := o.Get()
	require.False(t, ok)
	require.True(t, o.IsNull())
	require.False(t, o.InRange())
}

func TestRoundTripDomain(t *testing.T) {
	t.Run("int8", func(t *testing.T) { roundTrip[int8](t, math.MinInt8+1, -1, 0, math.MaxInt8) })
	t.Run("uint8", func(t *testing.T) { roundTrip[uint8](t, 0, 1, math.MaxUint8-1) })
	t.Run("int16", func(t *testing.T) { roundTrip[int16](t, math.MinInt16+1, 0, math.MaxInt16) })
	t.Run("uint16", func(t *testing.T) { roundTrip[uint16](t, 0, math.MaxUint16-1) })
	t.Run("int32", func(t *testing.T) { roundTrip[int32](t, math.MinInt32+1, -1, 0, math.MaxInt32) })
	t.Run("uint32", func(t *testing.T) { roundTrip[uint32](t, 0, math.MaxUint32-1) })
	t.Run("int64", func(t *testing.T) { roundTrip[int64](t, math.MinInt64+1, 0, math.MaxInt64) })
	t.Run("uint64", func(t *testing.T) { roundTrip[uint64](t, 0, math.MaxUint64-1) })
	t.Run("float32", func(t *testing.T) { roundTrip[float32](t, 1e-30, 1, math.MaxFloat32) })
	t.Run("float64", func(t *testing.T) { roundTrip[float64](t, 1e-300, 0.5, math.MaxFloat64) })
}

func TestOptionalClearWritesNullSentinel(t *testing.T) {
	buf := make([]byte, 4)
	o := view.NewOptional[int32](view.NewBytes(buf, nil), nil)

	o.Set(42)
	o.Clear()

	_, ok := o.Get()
	require.False(t, ok)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x80}, buf)
	require.Equal(t, int32(math.MinInt32), o.Raw())
	require.Equal(t, int32(math.MinInt32), o.Null())
	require.Equal(t, int32(7), o.ValueOr(7))
}

func TestOptionalFloatNull(t *testing.T) {
	buf := make([]byte, 8)
	o := view.NewOptional[float64](view.NewBytes(buf, nil), nil)

	o.Clear()
	require.True(t, o.IsNull())
	require.Equal(t, uint64(0x7FF8000000000000), view.Get[uint64](o.View(), 0))

	o.Set(math.NaN())
	require.True(t, o.IsNull())

	o.Set(2.5)
	v, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, 2.5, v)
}

func TestLimits(t *testing.T) {
	l := view.BuiltinLimits[uint16]()
	require.Equal(t, view.Limits[uint16]{Min: 0, Max: 65534, Null: 65535}, l)

	zero := traits.IntBits(format.Int32, 0)
	lo := traits.IntBits(format.Int32, 1)
	hi := traits.IntBits(format.Int32, 100)
	typ := &traits.Type{Primitive: format.Int32, Presence: format.PresenceOptional, Null: &zero, Min: &lo, Max: &hi}
	custom := view.LimitsFor[int32](typ)
	require.Equal(t, view.Limits[int32]{Min: 1, Max: 100, Null: 0}, custom)

	buf := make([]byte, 4)
	o := view.NewOptional(view.NewBytes(buf, nil), &custom)
	require.True(t, o.IsNull())
	o.Set(101)
	require.False(t, o.InRange())
	require.Equal(t, int32(100), o.Max())

	char := view.LimitsFor[uint8](&traits.Type{Primitive: format.Char})
	require.Equal(t, view.Limits[uint8]{Min: 0x20, Max: 0x7E, Null: 0}, char)

	r := view.NewRequired[int8](view.NewBytes([]byte{0x80}, nil), nil)
	require.Equal(t, int8(math.MinInt8), r.Raw())
	require.False(t, r.InRange())
	require.Equal(t, int8(math.MinInt8+1), r.Min())
}
