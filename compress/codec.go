// Package compress provides optional second-stage codecs for restream output.
//
// The block encoder already collapses saturated framebuffer groups to one byte
// each. Long runs of identical bitmap bytes (blank regions, solid fills) are
// still highly redundant, so a general-purpose codec applied on top of the
// encoded stream can shrink it further. This package wraps the codecs the
// benchmark harness compares:
//
//   - None: passes data through unchanged
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd, or
//     valyala/gozstd when built with the gozstd tag)
//   - S2: fast with a reasonable ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4/v4 block format)
//
// All built-in codecs are stateless values and safe for concurrent use.
package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/restream/format"
)

// Compressor compresses an encoded restream payload.
//
// The returned slice is owned by the caller and the input is not modified,
// except for NoOpCompressor which returns its input as-is.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Decompress returns an error if data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one second-stage compression pass.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
	Duration       time.Duration
}

// Ratio returns OriginalSize / CompressedSize, the same orientation the
// harness uses for the block encoder. It is 0 when nothing was produced.
func (s Stats) Ratio() float64 {
	if s.CompressedSize == 0 {
		return 0.0
	}

	return float64(s.OriginalSize) / float64(s.CompressedSize)
}

// SpaceSavings returns the space saved as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - float64(s.CompressedSize)/float64(s.OriginalSize)) * 100.0
}

// Measure compresses data with the codec registered for t and reports the result.
func Measure(t format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(t)
	if err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", t, err)
	}

	return out, Stats{
		Algorithm:      t,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
		Duration:       time.Since(start),
	}, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// target describes what the codec is used for and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
