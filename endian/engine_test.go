package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
		require.Equal("big", NativeName())
	case 0x02:
		require.Equal(binary.LittleEndian, result)
		require.Equal("little", NativeName())
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestLoadGroup_LaneLayout(t *testing.T) {
	group := []byte{0x00, 0xFF, 0x01, 0x02, 0x03, 0x04, 0x05, 0x80}
	word := LoadGroup(group)

	for i := range GroupBytes {
		lane := byte(word >> (8 * i))
		require.Equal(t, group[i], lane, "lane %d", i)
	}
}

func TestLoadGroup_IgnoresExtraBytes(t *testing.T) {
	group := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.Equal(t, uint64(0x0807060504030201), LoadGroup(group))
}

func TestLoadGroup_ShortPanics(t *testing.T) {
	require.Panics(t, func() { LoadGroup([]byte{1, 2, 3}) })
}

func TestStoreAndAppendGroup(t *testing.T) {
	group := []byte{0, 255, 0, 255, 0, 255, 0, 255}
	word := LoadGroup(group)

	dst := make([]byte, GroupBytes)
	StoreGroup(dst, word)
	require.Equal(t, group, dst)

	out := AppendGroup([]byte{0xAB}, word)
	require.Equal(t, append([]byte{0xAB}, group...), out)
}
