// Package endian provides the byte order engines used by views and capture containers.
//
// An SBE schema declares a single byte order for all of its messages. This package maps
// that declaration to an EndianEngine, which combines encoding/binary's ByteOrder and
// AppendByteOrder so that views can read and write in place while the capture writer
// appends.
//
// # Basic Usage
//
//	engine := endian.ForByteOrder(schema.ByteOrder)
//	v := engine.Uint16(buf[0:2])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/arloliu/sbeview/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256: little-endian hosts store the 0x00 byte first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine matches the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForByteOrder returns the engine for a schema byte order.
// Unknown values fall back to little-endian, the SBE default.
func ForByteOrder(order format.ByteOrder) EndianEngine {
	if order == format.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// ByteOrderOf returns the schema byte order matching engine.
func ByteOrderOf(engine EndianEngine) format.ByteOrder {
	if engine == binary.BigEndian {
		return format.BigEndian
	}

	return format.LittleEndian
}
