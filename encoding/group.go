package encoding

import "errors"

const (
	// GroupSize is the number of samples encoded as one unit.
	GroupSize = 8

	// Marker introduces an escape unit. 0xAB is also the bitmap byte of
	// [255 255 0 255 0 255 0 255]; that group is escaped instead.
	Marker byte = 0xAB

	// EscapeUnitSize is the encoded size of a full escape unit.
	EscapeUnitSize = 1 + GroupSize
)

var (
	// ErrPartialGroup is returned when the input length is not a multiple of
	// GroupSize and the tail policy rejects partial groups.
	ErrPartialGroup = errors.New("input length is not a multiple of the group size")

	// ErrUnknownStrategy is returned for a strategy that was never registered.
	ErrUnknownStrategy = errors.New("unknown lane packing strategy")

	// ErrStrategyUnavailable is returned when a registered strategy cannot run
	// on this host or build.
	ErrStrategyUnavailable = errors.New("lane packing strategy unavailable")

	// ErrTruncated is returned when an encoded stream ends inside a unit.
	ErrTruncated = errors.New("encoded stream truncated")

	// ErrTrailingData is returned when an encoded stream has bytes left after
	// the expected number of samples was decoded.
	ErrTrailingData = errors.New("encoded stream has trailing data")
)

// Classify turns the packed lane masks of a group into its unit header.
//
// It returns the bitmap byte and false for a saturated group, or Marker and
// true when the group must be written as an escape unit.
func Classify(gt, lt uint8) (byte, bool) {
	if gt&lt != 0 || gt == Marker {
		return Marker, true
	}

	return gt, false
}

// EncodeGroup appends the encoding of one group to dst using the reference packer.
func EncodeGroup(dst []byte, group [GroupSize]byte) []byte {
	gt, lt := ScalarPacker{}.Pack(group[:])

	return appendUnit(dst, group[:], gt, lt)
}

func appendUnit(dst, group []byte, gt, lt uint8) []byte {
	header, escape := Classify(gt, lt)
	dst = append(dst, header)
	if escape {
		dst = append(dst, group...)
	}

	return dst
}

// MaxEncodedLen returns the worst-case encoded size of n samples, reached when
// every group, including a partial tail, is escaped.
func MaxEncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	groups := (n + GroupSize - 1) / GroupSize

	return groups + n
}
