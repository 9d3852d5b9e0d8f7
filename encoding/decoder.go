package encoding

import "fmt"

// bitmapLUT expands a bitmap byte into its 8 saturated samples.
var bitmapLUT [256][GroupSize]byte

func init() {
	for b := range 256 {
		for i := range GroupSize {
			if b&(1<<i) != 0 {
				bitmapLUT[b][i] = 255
			}
		}
	}
}

// Decode appends the n samples encoded in src to dst.
//
// Units are read sequentially: Marker introduces min(8, remaining) raw
// samples, any other byte expands to 8 samples of 0 or 255. n must be the
// original sample count, which the stream itself does not carry.
func Decode(dst, src []byte, n int) ([]byte, error) {
	if n < 0 {
		return dst, fmt.Errorf("invalid sample count: %d", n)
	}

	dst = growSlice(dst, n)
	pos := 0
	for remaining := n; remaining > 0; {
		if pos >= len(src) {
			return dst, fmt.Errorf("%w: %d samples missing at offset %d", ErrTruncated, remaining, pos)
		}

		header := src[pos]
		pos++

		if header == Marker {
			raw := min(GroupSize, remaining)
			if len(src)-pos < raw {
				return dst, fmt.Errorf("%w: escape unit at offset %d needs %d bytes, have %d",
					ErrTruncated, pos-1, raw, len(src)-pos)
			}
			dst = append(dst, src[pos:pos+raw]...)
			pos += raw
			remaining -= raw

			continue
		}

		if remaining < GroupSize {
			return dst, fmt.Errorf("%w: bitmap unit at offset %d for a %d-sample tail", ErrTruncated, pos-1, remaining)
		}
		dst = append(dst, bitmapLUT[header][:]...)
		remaining -= GroupSize
	}

	if pos != len(src) {
		return dst, fmt.Errorf("%w: %d bytes after %d samples", ErrTrailingData, len(src)-pos, n)
	}

	return dst, nil
}
