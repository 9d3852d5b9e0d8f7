// Package endian provides the byte order helpers used to view a group of
// eight framebuffer samples as a single 64-bit word.
//
// The word-at-a-time lane packer relies on a fixed lane layout: sample i of a
// group always occupies bits 8*i..8*i+7 of the loaded word. That layout is
// exactly a little-endian load, independent of the host byte order, so all
// group loads and stores go through the little-endian engine:
//
//	word := endian.LoadGroup(group)      // lane i -> bits 8i..8i+7
//	endian.StoreGroup(dst, word)         // inverse
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// GroupBytes is the number of samples loaded into one word.
const GroupBytes = 8

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// NativeName returns "little" or "big" for the host byte order.
func NativeName() string {
	if IsNativeLittleEndian() {
		return "little"
	}

	return "big"
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

var laneEngine = GetLittleEndianEngine()

// LoadGroup loads the first GroupBytes samples of group into a word with
// sample i in bits 8*i..8*i+7. Panics if group is shorter than GroupBytes.
func LoadGroup(group []byte) uint64 {
	return laneEngine.Uint64(group[:GroupBytes])
}

// StoreGroup writes word back as GroupBytes samples using the LoadGroup lane layout.
func StoreGroup(dst []byte, word uint64) {
	laneEngine.PutUint64(dst[:GroupBytes], word)
}

// AppendGroup appends the GroupBytes samples of word to dst.
func AppendGroup(dst []byte, word uint64) []byte {
	return laneEngine.AppendUint64(dst, word)
}
