package view_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/internal/testschema"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
)

func TestDataRead(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	note := o.Note()
	require.Equal(t, 11, note.Len())
	require.Equal(t, "first order", note.String())
	require.Equal(t, 13, note.SizeBytes())
	require.Equal(t, byte('f'), note.At(0))
	require.Equal(t, 0xFFFF, note.MaxLen())
	require.False(t, note.Empty())

	tag := o.Tag()
	require.Equal(t, []byte("T1"), tag.Bytes())
	require.Equal(t, 0xFF, tag.MaxLen())
}

func TestDataResizeShiftsTrailingBytes(t *testing.T) {
	for _, newLen := range []int{0, 3, 11, 20} {
		buf := make([]byte, 256)
		o := testschema.WriteSampleOrder(buf)

		note := o.Note()
		end := note.View().Offset() + note.SizeBytes()
		trailing := bytes.Clone(buf[end:testschema.SampleOrderSize])

		note.Resize(newLen)

		newEnd := end + newLen - 11
		require.Equal(t, trailing, buf[newEnd:newEnd+len(trailing)], "len %d", newLen)
		require.Equal(t, "T1", o.Tag().String())
		require.Equal(t, testschema.SampleOrderSize+newLen-11, o.SizeBytes())
		require.Equal(t, newLen, o.Note().Len())
	}
}

func TestDataResizeZeroFillsGrowth(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	o.Note().Resize(14)
	require.Equal(t, append([]byte("first order"), 0, 0, 0), o.Note().Bytes())
}

func TestDataEditing(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 256))

	o.Note().Erase(0, 6)
	require.Equal(t, "order", o.Note().String())

	o.Note().Insert(0, []byte("my "))
	require.Equal(t, "my order", o.Note().String())

	o.Note().Append('!')
	require.Equal(t, "my order!", o.Note().String())

	o.Note().Assign([]byte("replaced"))
	require.Equal(t, "replaced", o.Note().String())
	require.Equal(t, "T1", o.Tag().String())

	o.Note().Clear()
	require.True(t, o.Note().Empty())
	require.Equal(t, "T1", o.Tag().String())
	require.Equal(t, testschema.SampleOrderSize-11, o.SizeBytes())
}

func TestDataAssignString(t *testing.T) {
	tests := []struct {
		name string
		eos  format.EOSMode
		want []byte
	}{
		{"all", format.EOSAll, []byte{'T', '2', 0}},
		{"single with room", format.EOSSingle, []byte{'T', '2', 0}},
		{"none", format.EOSNone, []byte{'T', '2'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testschema.WriteSampleOrder(make([]byte, 256))
			o.Tag().AssignString("T2", tt.eos)
			require.Equal(t, tt.want, o.Tag().Bytes())
		})
	}
}

func TestDataNoSlack(t *testing.T) {
	buf := make([]byte, 23)
	s := testschema.WriteSimple(buf, 7, []byte{1, 2, 3})
	require.Equal(t, 23, s.SizeBytes())

	// No trailing byte left for a terminator.
	s.Payload().AssignString("abc", format.EOSSingle)
	require.Equal(t, "abc", s.Payload().String())

	got := captureViolations(t)
	s.Payload().Resize(4)
	require.Equal(t, 3, s.Payload().Len())
	require.Len(t, *got, 1)
	require.ErrorIs(t, (*got)[0], errs.ErrInsufficientSlack)
}

func TestDataLengthOverflow(t *testing.T) {
	o := testschema.WriteSampleOrder(make([]byte, 1024))
	got := captureViolations(t)

	o.Tag().Resize(300)
	o.Tag().Erase(1, 5)
	o.Tag().Insert(3, []byte{1})

	require.Len(t, *got, 3)
	require.ErrorIs(t, (*got)[0], errs.ErrLengthOverflow)
	require.ErrorIs(t, (*got)[1], errs.ErrIndexOutOfRange)
	require.ErrorIs(t, (*got)[2], errs.ErrIndexOutOfRange)
	require.Equal(t, "T1", o.Tag().String())
}

func TestDataGrowWithoutSlack(t *testing.T) {
	src := make([]byte, 256)
	testschema.WriteSampleOrder(src)
	buf := append([]byte(nil), src[:testschema.SampleOrderSize]...)
	o := testschema.NewOrder(buf)
	got := captureViolations(t)

	o.Note().Resize(13)
	o.Fills().Resize(3)

	require.Len(t, *got, 2)
	require.ErrorIs(t, (*got)[0], errs.ErrInsufficientSlack)
	require.ErrorIs(t, (*got)[1], errs.ErrInsufficientSlack)
	require.Equal(t, "first order", o.Note().String())
	require.Equal(t, 2, o.Fills().Len())
	require.Equal(t, "T1", o.Tag().String())
	require.Equal(t, testschema.SampleOrderSize, o.SizeBytes())

	// Shrinking zeroes the tail, which can then be grown into again.
	o.Note().Resize(9)
	require.Equal(t, "first ord", o.Note().String())
	o.Note().Assign([]byte("first order"))
	require.Equal(t, "first order", o.Note().String())
	require.Equal(t, "T1", o.Tag().String())
	require.Len(t, *got, 2)
}

func TestDataInsertMultiByteElements(t *testing.T) {
	ticks := &traits.Data{Attrs: traits.Attrs{Name: "ticks"}, Length: format.Uint16, Value: format.Uint32}
	d := view.NewData(view.NewBytes(make([]byte, 32), nil), ticks)
	d.Resize(2)
	require.Equal(t, 2+8, d.SizeBytes())

	got := captureViolations(t)
	d.Append(1, 2)
	d.Insert(0, []byte{3})

	require.Len(t, *got, 2)
	require.ErrorIs(t, (*got)[0], errs.ErrMultiByteElement)
	require.ErrorIs(t, (*got)[1], errs.ErrUsage)
	require.Equal(t, 2, d.Len())
}
