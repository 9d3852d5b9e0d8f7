package encoding

// Stats summarizes how a stream classifies under the encoder.
type Stats struct {
	Groups       int // Full groups in the input
	BitmapUnits  int // Groups written as a single bitmap byte
	EscapeUnits  int // Groups written as Marker + 8 raw samples
	Collisions   int // Saturated groups escaped because their bitmap equals Marker
	TailSamples  int // Samples in a trailing partial group
	OriginalSize int
	EncodedSize  int
}

// Ratio returns OriginalSize / EncodedSize, or 0 when nothing was encoded.
func (s Stats) Ratio() float64 {
	if s.EncodedSize == 0 {
		return 0
	}

	return float64(s.OriginalSize) / float64(s.EncodedSize)
}

// EscapeRate returns the fraction of full groups that escaped.
func (s Stats) EscapeRate() float64 {
	if s.Groups == 0 {
		return 0
	}

	return float64(s.EscapeUnits) / float64(s.Groups)
}

// Analyze classifies src without producing output. The tail policy is
// applied exactly as in Encode.
func (e *Encoder) Analyze(src []byte) (Stats, error) {
	full, err := e.splitTail(src)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Groups:       full / GroupSize,
		TailSamples:  len(src) - full,
		OriginalSize: len(src),
	}

	p := e.strategy.Packer
	for off := 0; off < full; off += GroupSize {
		gt, lt := p.Pack(src[off : off+GroupSize])
		if _, escape := Classify(gt, lt); !escape {
			st.BitmapUnits++
			continue
		}
		st.EscapeUnits++
		if gt&lt == 0 {
			st.Collisions++
		}
	}

	st.EncodedSize = st.BitmapUnits + st.EscapeUnits*EscapeUnitSize
	if st.TailSamples > 0 {
		st.EncodedSize += 1 + st.TailSamples
	}

	return st, nil
}
