package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/format"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNative(t *testing.T) {
	native := IsNative(GetLittleEndianEngine())
	require.NotEqual(t, native, IsNative(GetBigEndianEngine()))
}

func TestForByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order format.ByteOrder
		want  EndianEngine
	}{
		{"little", format.LittleEndian, binary.LittleEndian},
		{"big", format.BigEndian, binary.BigEndian},
		{"unknown falls back to little", format.ByteOrder(9), binary.LittleEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := ForByteOrder(tt.order)
			require.Equal(t, tt.want, engine)

			buf := engine.AppendUint16(nil, 0x0102)
			require.Equal(t, uint16(0x0102), engine.Uint16(buf))
		})
	}

	require.Equal(t, format.BigEndian, ByteOrderOf(GetBigEndianEngine()))
	require.Equal(t, format.LittleEndian, ByteOrderOf(GetLittleEndianEngine()))
}
