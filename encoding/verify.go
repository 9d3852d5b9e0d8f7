package encoding

import (
	"errors"
	"fmt"
)

// ErrDivergence is returned by VerifyEquivalence when two packers disagree.
var ErrDivergence = errors.New("lane packers diverge")

// VerifyEquivalence packs every group with both a and b and returns an error
// wrapping ErrDivergence for the first group where the results differ.
func VerifyEquivalence(a, b LanePacker, groups [][GroupSize]byte) error {
	for i := range groups {
		g := groups[i][:]
		agt, alt := a.Pack(g)
		bgt, blt := b.Pack(g)
		if agt != bgt || alt != blt {
			return fmt.Errorf("%w: group %d %v: gt %08b/%08b lt %08b/%08b",
				ErrDivergence, i, groups[i], agt, bgt, alt, blt)
		}
	}

	return nil
}

// VerifyStream encodes src with both packers and compares the streams byte
// for byte. src must be a whole number of groups.
func VerifyStream(a, b LanePacker, src []byte) error {
	if len(src)%GroupSize != 0 {
		return fmt.Errorf("%w: %d bytes", ErrPartialGroup, len(src))
	}

	outA := encodeGroups(make([]byte, 0, MaxEncodedLen(len(src))), src, a)
	outB := encodeGroups(make([]byte, 0, MaxEncodedLen(len(src))), src, b)

	n := min(len(outA), len(outB))
	for i := range n {
		if outA[i] != outB[i] {
			return fmt.Errorf("%w: encoded streams differ at byte %d", ErrDivergence, i)
		}
	}
	if len(outA) != len(outB) {
		return fmt.Errorf("%w: encoded lengths %d and %d", ErrDivergence, len(outA), len(outB))
	}

	return nil
}
