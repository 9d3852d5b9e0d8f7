package compress

// ZstdCompressor applies Zstandard to an encoded stream.
//
// Encoded e-ink frames are dominated by long runs of 0x00 and 0xFF bitmap
// bytes, which Zstd collapses well; use it when the ratio matters more than
// encode latency.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
