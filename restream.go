// Package restream compresses framebuffer-like byte streams whose samples
// cluster at the extremes, such as the 8-bit buffers of e-ink and monochrome
// panels.
//
// Every group of 8 samples becomes either one bitmap byte (all samples are 0
// or 255; bit i set iff sample i is 255) or an escape unit (the marker byte
// 0xAB followed by the 8 raw samples). A blank or text-only page therefore
// shrinks to roughly 1/8 of its size while arbitrary grey levels survive
// unchanged.
//
// # Basic Usage
//
//	out, err := restream.Encode(frame)
//	if err != nil {
//	    return err // len(frame) % 8 != 0
//	}
//
//	restored, err := restream.Decode(out, len(frame))
//
// # Package Structure
//
// This package wraps the encoding package for the common cases. Use
// encoding.NewEncoder directly to pick a lane packing strategy, a tail policy
// or the parallel worker layout.
package restream

import (
	"github.com/arloliu/restream/encoding"
	"github.com/arloliu/restream/format"
)

// Marker is the byte that introduces an escape unit.
const Marker = encoding.Marker

// GroupSize is the number of samples per encoded unit.
const GroupSize = encoding.GroupSize

// NewEncoder creates an encoder with custom options, see encoding.NewEncoder.
//
// Example:
//
//	enc, err := restream.NewEncoder(
//	    encoding.WithStrategy(format.StrategySWAR),
//	    encoding.WithTailPolicy(format.TailEscapeTail),
//	)
func NewEncoder(opts ...encoding.EncoderOption) (*encoding.Encoder, error) {
	return encoding.NewEncoder(opts...)
}

// Encode encodes src with the reference scalar packer.
//
// src must be a whole number of groups; otherwise the error wraps
// encoding.ErrPartialGroup. Empty input yields empty output.
func Encode(src []byte) ([]byte, error) {
	return encodeWith(src, format.StrategyScalar)
}

// EncodeFast encodes src with the best lane packer available on this host.
// The output is byte-identical to Encode.
func EncodeFast(src []byte) ([]byte, error) {
	return encodeWith(src, format.StrategyAuto)
}

// EncodeParallel encodes src on GOMAXPROCS goroutines with the best
// available lane packer. The output is byte-identical to Encode.
func EncodeParallel(src []byte) ([]byte, error) {
	enc, err := encoding.NewEncoder()
	if err != nil {
		return nil, err
	}

	return enc.EncodeParallel(make([]byte, 0, encoding.MaxEncodedLen(len(src))), src)
}

// Decode restores n samples from an encoded stream.
func Decode(src []byte, n int) ([]byte, error) {
	return encoding.Decode(nil, src, n)
}

func encodeWith(src []byte, strategy format.StrategyType) ([]byte, error) {
	enc, err := encoding.NewEncoder(encoding.WithStrategy(strategy))
	if err != nil {
		return nil, err
	}

	return enc.Encode(make([]byte, 0, encoding.MaxEncodedLen(len(src))), src)
}
