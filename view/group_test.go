package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/internal/testschema"
	"github.com/arloliu/sbeview/view"
)

func TestFlatGroupEntries(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))
	fills := o.Fills()

	require.True(t, fills.IsFlat())
	require.Equal(t, 2, fills.Len())
	require.Equal(t, 12, fills.BlockLength())
	require.Equal(t, 4+2*12, fills.SizeBytes())
	require.Equal(t, 65534, fills.MaxLen())

	start := fills.View().Offset() + fills.Dimension().SizeBytes()
	for i := range fills.Len() {
		e := fills.Entry(i)
		require.Equal(t, start+i*12, e.View().Offset())
		require.Equal(t, 12, e.SizeBytes())
	}
	require.Equal(t, fills.Entry(1).View().Offset(), fills.Back().View().Offset())

	f := testschema.Fill{Entry: fills.Entry(1)}
	require.Equal(t, int64(101), f.Px().Get())
	require.Equal(t, uint32(7), f.Qty().Get())

	got := captureViolations(t)
	fills.Entry(2)
	require.ErrorIs(t, (*got)[0], errs.ErrIndexOutOfRange)
}

func TestNestedGroupIndexIsUsageError(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))
	legs := o.Legs()
	require.False(t, legs.IsFlat())

	require.Panics(t, func() { legs.Entry(0) })

	got := captureViolations(t)
	legs.Entry(0)
	legs.Back()
	require.Len(t, *got, 2)
	require.ErrorIs(t, (*got)[0], errs.ErrNestedGroupIndex)
	require.ErrorIs(t, (*got)[0], errs.ErrUsage)

	front := testschema.Leg{Entry: legs.Front()}
	require.Equal(t, int32(1), front.Ratio().Get())
}

func TestNestedGroupAll(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	var ratios []int32
	var memos []string
	var allocs []int
	for _, e := range o.Legs().All() {
		leg := testschema.Leg{Entry: e}
		ratios = append(ratios, leg.Ratio().Get())
		memos = append(memos, leg.Memo().String())
		allocs = append(allocs, leg.Allocs().Len())
	}

	require.Equal(t, []int32{1, -2}, ratios)
	require.Equal(t, []string{"hedge", ""}, memos)
	require.Equal(t, []int{2, 0}, allocs)
	require.Equal(t, 4+22+9, o.Legs().SizeBytes())
}

func TestCursorTraversal(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	c := o.Cursor()
	fills := o.GroupFrom(&c, 0)
	n := 0
	for range fills.Range(&c) {
		n++
	}
	require.Equal(t, 2, n)
	require.Equal(t, fills.View().Offset()+fills.SizeBytes(), c.Pos())

	legs := o.GroupFrom(&c, 1)
	var accounts []uint32
	var memos []string
	for _, e := range legs.Range(&c) {
		allocs := e.GroupFrom(&c, 0)
		for range allocs.Range(&c) {
			accounts = append(accounts, view.Read[uint32](&c, 0))
		}
		memos = append(memos, e.DataFrom(&c, 0).String())
	}
	require.Equal(t, []uint32{11, 12}, accounts)
	require.Equal(t, []string{"hedge", ""}, memos)
	require.Equal(t, legs.View().Offset()+legs.SizeBytes(), c.Pos())

	require.Equal(t, "first order", o.DataFrom(&c, 0).String())
	require.Equal(t, "T1", o.DataFrom(&c, 1).String())
	require.Equal(t, testschema.SampleOrderSize, o.SizeBytesAt(c))
}

func TestCursorRangeSkipsUnconsumedEntries(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	c := o.Cursor()
	for range o.GroupFrom(&c, 0).Range(&c) {
	}
	legs := o.GroupFrom(&c, 1)
	n := 0
	for range legs.Range(&c) {
		n++
	}
	require.Equal(t, 2, n)
	require.Equal(t, legs.View().Offset()+legs.SizeBytes(), c.Pos())
	require.Equal(t, "first order", o.DataFrom(&c, 0).String())
}

func TestFlatGroupResize(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	o.Fills().Resize(3)
	require.Equal(t, 3, o.Fills().Len())
	require.Equal(t, int64(0), view.Get[int64](o.Fills().Entry(2).Field(0), 0))
	require.Equal(t, int64(101), view.Get[int64](o.Fills().Entry(1).Field(0), 0))
	require.Equal(t, "first order", o.Note().String())
	require.Equal(t, "hedge", testschema.Leg{Entry: o.Legs().Front()}.Memo().String())
	require.Equal(t, testschema.SampleOrderSize+12, o.SizeBytes())

	o.Fills().Resize(1)
	require.Equal(t, testschema.SampleOrderSize-12, o.SizeBytes())
	require.Equal(t, "T1", o.Tag().String())

	o.Fills().Clear()
	require.True(t, o.Fills().Empty())
	require.Equal(t, testschema.SampleOrderSize-24, o.SizeBytes())
}

func TestNestedGroupResize(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	o.Legs().Resize(3)
	require.Equal(t, testschema.SampleOrderSize+9, o.SizeBytes())

	var last view.Entry
	for _, e := range o.Legs().All() {
		last = e
	}
	leg := testschema.Leg{Entry: last}
	require.Equal(t, 0, leg.Allocs().Len())
	require.Equal(t, 4, leg.Allocs().BlockLength())
	require.True(t, leg.Memo().Empty())
	require.Equal(t, "first order", o.Note().String())

	o.Legs().Resize(1)
	require.Equal(t, testschema.SampleOrderSize-9, o.SizeBytes())
	require.Equal(t, "hedge", testschema.Leg{Entry: o.Legs().Front()}.Memo().String())
	require.Equal(t, "T1", o.Tag().String())

	o.Legs().Clear()
	require.Equal(t, testschema.SampleOrderSize-35+4, o.SizeBytes())
	require.Equal(t, "first order", o.Note().String())
}

func TestGroupResizeOverflow(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))
	got := captureViolations(t)

	o.Fills().Resize(-1)
	o.Fills().Resize(100)

	require.Len(t, *got, 2)
	require.ErrorIs(t, (*got)[0], errs.ErrLengthOverflow)
	require.ErrorIs(t, (*got)[1], errs.ErrInsufficientSlack)
	require.Equal(t, 2, o.Fills().Len())
}
