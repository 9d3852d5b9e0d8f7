package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte{0xAB, 0, 255})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0xAB, 0, 255}, bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte{1, 2, 3, 4})
		bb.Grow(1)
		assert.GreaterOrEqual(t, bb.Cap(), 4+SegmentBufferDefaultSize)
		assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	})

	t.Run("large buffer grows by quarter", func(t *testing.T) {
		size := 8 * SegmentBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("grows at least required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * SegmentBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 3*SegmentBufferDefaultSize)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte{0xFF, 0x00})

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, []byte{0xFF, 0x00}, out.Bytes())
}

func TestByteBufferPool_PutResets(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("segment"))
	p.Put(bb)

	got := p.Get()
	assert.Equal(t, 0, got.Len(), "pooled buffer must come back empty")
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := NewByteBuffer(64)
	_, _ = bb.Write([]byte("oversized"))
	p.Put(bb)

	// The oversized buffer was dropped; Put must also leave it untouched.
	assert.Equal(t, []byte("oversized"), bb.Bytes())
	p.Put(nil)
}

func TestSegmentPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(v byte) {
			defer wg.Done()
			bb := GetSegmentBuffer()
			defer PutSegmentBuffer(bb)

			for range 100 {
				_, _ = bb.Write([]byte{v})
			}
			assert.Equal(t, 100, bb.Len())
		}(byte(i))
	}
	wg.Wait()
}
