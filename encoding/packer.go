package encoding

// LanePacker compares the 8 lanes of a group against the two saturation
// levels and packs the results into bit fields.
//
// Pack reads group[0:GroupSize]. Bit i of gt is set iff group[i] > 0 and bit i
// of lt is set iff group[i] < 255. Implementations must be safe for
// concurrent use and must agree bit for bit with ScalarPacker.
type LanePacker interface {
	Pack(group []byte) (gt, lt uint8)
}

// ScalarPacker is the reference LanePacker: eight independent comparisons.
type ScalarPacker struct{}

var _ LanePacker = ScalarPacker{}

// Pack implements LanePacker.
func (ScalarPacker) Pack(group []byte) (gt, lt uint8) {
	_ = group[GroupSize-1]
	for i := range GroupSize {
		v := group[i]
		if v > 0 {
			gt |= 1 << i
		}
		if v < 255 {
			lt |= 1 << i
		}
	}

	return gt, lt
}
