package capture

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/errs"
	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/internal/testschema"
	"github.com/arloliu/sbeview/section"
	"github.com/arloliu/sbeview/view"
)

func sampleOrder() []byte {
	buf := make([]byte, 256)
	testschema.WriteSampleOrder(buf)

	return buf
}

func sampleSimple(value int32, payload string) []byte {
	buf := make([]byte, 64)
	s := testschema.WriteSimple(buf, value, []byte(payload))

	return buf[:s.SizeBytes()]
}

func TestWriterAppend(t *testing.T) {
	w, err := NewWriter(testschema.Market, WithCompression(format.CompressionNone))
	require.NoError(t, err)

	n, err := w.Append(sampleOrder())
	require.NoError(t, err)
	require.Equal(t, testschema.SampleOrderSize, n)

	n, err = w.Append(sampleSimple(7, "abc"))
	require.NoError(t, err)
	require.Equal(t, 23, n)

	require.Equal(t, 2, w.Len())
	require.Equal(t, testschema.SampleOrderSize+23, w.PayloadSize())

	blob, err := w.Finish()
	require.NoError(t, err)
	require.Len(t, blob, section.HeaderSize+2*section.IndexEntrySize+testschema.SampleOrderSize+23)

	h, err := section.ParseHeader(blob)
	require.NoError(t, err)
	require.Equal(t, uint32(2), h.MessageCount)
	require.Equal(t, uint16(testschema.SchemaID), h.SchemaID)
	require.Equal(t, format.CompressionNone, h.Flag.Compression())
}

func TestWriterRejects(t *testing.T) {
	var logs bytes.Buffer
	w, err := NewWriter(testschema.Market, WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	unknown := sampleSimple(1, "x")
	view.NewHeader(view.NewBytes(unknown, nil), testschema.Market.HeaderTraits()).SetTemplateID(99)

	foreign := sampleSimple(1, "x")
	view.NewHeader(view.NewBytes(foreign, nil), testschema.Market.HeaderTraits()).SetSchemaID(7)

	overlong := make([]byte, 64)
	s := testschema.WriteSimple(overlong, 1, []byte("x"))
	view.Put[uint32](s.Payload().View(), 0, 1000)

	tests := []struct {
		name string
		msg  []byte
		err  error
	}{
		{"truncated header", []byte{1, 2, 3}, errs.ErrTruncatedMessage},
		{"unknown template", unknown, errs.ErrUnknownTemplate},
		{"foreign schema", foreign, errs.ErrSchemaMismatch},
		{"data past buffer", overlong, errs.ErrInvalidMessage},
		{"cut order", sampleOrder()[:100], errs.ErrInvalidMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.Append(tt.msg)
			require.ErrorIs(t, err, tt.err)
		})
	}

	require.Equal(t, len(tests), w.Rejected())
	require.Zero(t, w.Len())
	require.Contains(t, logs.String(), "message rejected")
	require.ErrorIs(t, errs.ErrInvalidMessage, errs.ErrStructural)
}

func TestWriterLimits(t *testing.T) {
	t.Run("max messages", func(t *testing.T) {
		w, err := NewWriter(testschema.Market, WithMaxMessages(1))
		require.NoError(t, err)

		_, err = w.Append(sampleOrder())
		require.NoError(t, err)
		_, err = w.Append(sampleOrder())
		require.ErrorIs(t, err, errs.ErrCaptureFull)
		require.Zero(t, w.Rejected())
	})

	t.Run("max payload size", func(t *testing.T) {
		w, err := NewWriter(testschema.Market, WithMaxPayloadSize(testschema.SampleOrderSize+22))
		require.NoError(t, err)

		_, err = w.Append(sampleOrder())
		require.NoError(t, err)
		_, err = w.Append(sampleSimple(1, "abc"))
		require.ErrorIs(t, err, errs.ErrCaptureFull)
		_, err = w.Append(sampleSimple(1, "ab"))
		require.NoError(t, err)
	})

	t.Run("invalid options", func(t *testing.T) {
		for _, opt := range []Option{
			WithMaxMessages(0),
			WithMaxPayloadSize(-1),
			WithMaxMessageSize(0),
			WithCompression(format.CompressionType(0)),
		} {
			_, err := NewWriter(testschema.Market, opt)
			require.Error(t, err)
		}

		_, err := NewWriter(nil)
		require.ErrorIs(t, err, errs.ErrUsage)
	})
}

func TestWriterAppendAll(t *testing.T) {
	var batch []byte
	batch = append(batch, sampleOrder()[:testschema.SampleOrderSize]...)
	batch = append(batch, sampleSimple(1, "abc")...)

	w, err := NewWriter(testschema.Market)
	require.NoError(t, err)

	n, err := w.AppendAll(batch)
	require.NoError(t, err)
	require.Equal(t, len(batch), n)
	require.Equal(t, 2, w.Len())

	n, err = w.AppendAll(append(batch, 0xFF, 0xFF))
	require.ErrorIs(t, err, errs.ErrTruncatedMessage)
	require.Equal(t, len(batch), n)
	require.Equal(t, 4, w.Len())
}

func TestWriterEncode(t *testing.T) {
	w, err := NewWriter(testschema.Market, WithMaxMessageSize(64))
	require.NoError(t, err)

	n, err := w.Encode(testschema.SimpleTraits, func(m view.Message) error {
		s := testschema.Simple{Message: m}
		s.Value().Set(-5)
		s.Payload().Assign([]byte("abc"))

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 23, n)

	t.Run("fill error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := w.Encode(testschema.SimpleTraits, func(view.Message) error { return boom })
		require.ErrorIs(t, err, boom)
	})

	t.Run("scratch too small", func(t *testing.T) {
		small, err := NewWriter(testschema.Market, WithMaxMessageSize(20))
		require.NoError(t, err)

		_, err = small.Encode(testschema.SimpleTraits, func(m view.Message) error {
			testschema.Simple{Message: m}.Payload().Assign([]byte("abc"))
			return nil
		})
		require.ErrorIs(t, err, errs.ErrInsufficientSlack)
		require.ErrorIs(t, err, errs.ErrBoundsViolation)
	})

	blob, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(blob, testschema.Market)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	m, err := r.Message(0)
	require.NoError(t, err)
	s := testschema.Simple{Message: m}
	require.Equal(t, int32(-5), s.Value().Get())
	require.Equal(t, "abc", s.Payload().String())
}

func TestWriterFinishAndReset(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	w, err := NewWriter(testschema.Market, WithCreatedAt(createdAt))
	require.NoError(t, err)

	_, err = w.Finish()
	require.ErrorIs(t, err, errs.ErrEmptyCapture)

	_, err = w.Append(sampleOrder())
	require.NoError(t, err)
	blob, err := w.Finish()
	require.NoError(t, err)

	h, err := section.ParseHeader(blob)
	require.NoError(t, err)
	require.True(t, createdAt.Equal(h.CreatedAtAsTime()))

	_, err = w.Append(sampleOrder())
	require.ErrorIs(t, err, errs.ErrWriterFinished)
	_, err = w.Finish()
	require.ErrorIs(t, err, errs.ErrWriterFinished)
	require.Zero(t, w.PayloadSize())

	w.Reset()
	require.Zero(t, w.Len())
	_, err = w.Append(sampleSimple(3, ""))
	require.NoError(t, err)
	_, err = w.Finish()
	require.NoError(t, err)
}
