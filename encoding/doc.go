// Package encoding implements the restream block encoder: a stateless
// bitmap/escape transform for framebuffer streams whose samples cluster at
// 0 (off) and 255 (on).
//
// # Stream Format
//
// The input is consumed in groups of GroupSize (8) samples. Each group becomes
// exactly one unit:
//
//	bitmap unit:  1 byte   bit i set iff sample i == 255 (all samples 0 or 255)
//	escape unit:  9 bytes  Marker, then the 8 raw samples in order
//
// A group escapes when any sample is an interior value (1..254). The one
// saturated group whose bitmap byte equals Marker, [255 255 0 255 0 255 0 255],
// escapes too, so a standalone Marker byte always introduces raw samples and
// the stream decodes without ambiguity.
//
// There is no header or length prefix. A consumer must know the original
// sample count to decode, see Decode.
//
// # Lane Packers
//
// Classification is expressed against a single primitive, LanePacker, which
// compares all 8 lanes of a group against 0 and 255 and packs the results into
// two bit fields:
//
//	gt: bit i set iff sample[i] > 0
//	lt: bit i set iff sample[i] < 255
//
// A group is saturated iff gt&lt == 0, and then gt is the bitmap byte.
// ScalarPacker is the portable reference. SWARPacker evaluates all lanes in one
// 64-bit word and must produce bit-identical results; VerifyEquivalence checks
// that property. Strategies are registered with Register and picked at runtime
// by Detect, which honours the RESTREAM_STRATEGY environment variable.
//
// # Partial Groups
//
// Inputs whose length is not a multiple of GroupSize are rejected with
// ErrPartialGroup by default. With format.TailEscapeTail the trailing samples
// are written as a short escape unit: Marker followed by len(src)%8 raw bytes.
//
// # Basic Usage
//
//	enc, err := encoding.NewEncoder()
//	if err != nil {
//	    return err
//	}
//	out, err := enc.Encode(nil, frame)
//	if err != nil {
//	    return fmt.Errorf("encode frame: %w", err)
//	}
//
//	restored, err := encoding.Decode(nil, out, len(frame))
//
// # Thread Safety
//
// An Encoder is immutable after NewEncoder and safe for concurrent use.
// EncodeParallel splits its input across goroutines on group boundaries and
// returns output byte-identical to Encode.
package encoding
