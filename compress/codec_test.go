package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/internal/testschema"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// orderBatch returns n sample orders encoded back to back.
func orderBatch(n int) []byte {
	msg := make([]byte, 256)
	testschema.WriteSampleOrder(msg)

	return bytes.Repeat(msg[:testschema.SampleOrderSize], n)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)

			shared, err := GetCodec(ct)
			require.NoError(t, err)
			require.IsType(t, codec, shared)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x7F), "payload")
	require.ErrorContains(t, err, "invalid payload compression")

	_, err = GetCodec(format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)
			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "single_byte", data: []byte{0x42}},
		{name: "one_order", data: orderBatch(1)},
		{name: "order_batch", data: orderBatch(512)},
		{name: "zeroed_buffer", data: make([]byte, 1024*1024)},
		{
			name: "pseudo_random",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					data[i] = byte((i*7 + i*i) % 256)
				}

				return data
			}(),
		},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_CompressOrders(t *testing.T) {
	data := orderBatch(512)

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data)/4)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	data := orderBatch(16)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			done := make(chan error, numGoroutines)
			for range numGoroutines {
				go func() {
					c, err := codec.Compress(data)
					if err != nil {
						done <- err
						return
					}
					d, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(d, data) || len(c) == 0 {
						done <- fmt.Errorf("%s: round trip mismatch", codecName)
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}
