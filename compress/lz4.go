package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// Block kinds written as the first byte of every non-empty LZ4 payload.
// CompressBlock reports incompressible input by writing nothing, in which
// case the payload is stored raw.
const (
	lz4KindStored byte = 0x00
	lz4KindBlock  byte = 0x01
)

// lz4MaxDecodedSize bounds the adaptive decode buffer.
const lz4MaxDecodedSize = 128 * 1024 * 1024

var errLZ4Corrupt = errors.New("lz4: corrupt payload")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor applies LZ4 block compression to an encoded stream.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 compression.
//
// Returns nil for empty input.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 || n >= len(data) {
		dst = append(dst[:0], lz4KindStored)
		return append(dst, data...), nil
	}
	dst[0] = lz4KindBlock

	return dst[:1+n], nil
}

// Decompress decompresses the input data using LZ4 decompression.
//
// The decoded size is not stored, so the buffer starts at 8x the payload (a
// typical ratio for encoded frames) and doubles on ErrInvalidSourceShortBuffer
// up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	kind, payload := data[0], data[1:]
	switch kind {
	case lz4KindStored:
		return append([]byte(nil), payload...), nil
	case lz4KindBlock:
	default:
		return nil, fmt.Errorf("%w: unknown block kind 0x%02x", errLZ4Corrupt, kind)
	}

	bufSize := max(len(payload)*8, 64)
	for bufSize <= lz4MaxDecodedSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(payload, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxDecodedSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
