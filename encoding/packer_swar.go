//go:build !purego

package encoding

import (
	"math/bits"

	"github.com/arloliu/restream/endian"
	"github.com/arloliu/restream/format"
)

const (
	laneLowBits  = 0x7F7F7F7F7F7F7F7F
	laneHighBits = 0x8080808080808080

	// laneGather moves the high bit of byte i to bit 56+i. Every partial
	// product lands on a distinct bit, so the multiply never carries.
	laneGather = 0x0002040810204081
)

// SWARPacker evaluates all 8 lanes of a group at once inside a 64-bit word.
//
// The group is loaded little-endian so lane i occupies bits 8i..8i+7. For each
// lane, (v&0x7F)+0x7F sets the lane's high bit iff the low 7 bits are non-zero
// and cannot carry into the next lane; OR-ing v covers the lane's own high bit.
// The resulting per-lane "non-zero" flags are gathered into one byte with a
// multiply. lt is the same computation on the complemented word.
type SWARPacker struct{}

var _ LanePacker = SWARPacker{}

// Pack implements LanePacker.
func (SWARPacker) Pack(group []byte) (gt, lt uint8) {
	w := endian.LoadGroup(group)

	return gatherLanes(nonZeroLanes(w)), gatherLanes(nonZeroLanes(^w))
}

func nonZeroLanes(w uint64) uint64 {
	return (((w & laneLowBits) + laneLowBits) | w) & laneHighBits
}

func gatherLanes(m uint64) uint8 {
	return uint8((m * laneGather) >> 56)
}

func swarAvailable() bool {
	return bits.UintSize == 64
}

func init() {
	Register(Strategy{
		Type:        format.StrategySWAR,
		Packer:      SWARPacker{},
		Accelerated: true,
		Available:   swarAvailable,
	})
}
