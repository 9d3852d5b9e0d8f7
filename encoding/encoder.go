package encoding

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/arloliu/restream/format"
	"github.com/arloliu/restream/internal/options"
	"github.com/arloliu/restream/internal/pool"
)

// DefaultSegmentGroups is the number of groups each EncodeParallel worker
// encodes per segment.
const DefaultSegmentGroups = 4096

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// Encoder encodes framebuffer streams with a fixed lane packing strategy.
type Encoder struct {
	strategyType  format.StrategyType
	strategy      Strategy
	tailPolicy    format.TailPolicy
	workers       int
	segmentGroups int
}

// WithStrategy selects the lane packing strategy. The default is
// format.StrategyAuto, resolved through Detect.
func WithStrategy(t format.StrategyType) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.strategyType = t
	})
}

// WithTailPolicy sets how a trailing partial group is handled.
func WithTailPolicy(p format.TailPolicy) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch p {
		case format.TailReject, format.TailEscapeTail:
			e.tailPolicy = p
			return nil
		default:
			return fmt.Errorf("invalid tail policy: %v", p)
		}
	})
}

// WithWorkers sets the number of goroutines used by EncodeParallel.
func WithWorkers(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n <= 0 {
			return fmt.Errorf("invalid worker count: %d", n)
		}
		e.workers = n

		return nil
	})
}

// WithSegmentGroups sets how many groups make up one EncodeParallel segment.
func WithSegmentGroups(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n <= 0 {
			return fmt.Errorf("invalid segment size: %d groups", n)
		}
		e.segmentGroups = n

		return nil
	})
}

// NewEncoder creates an Encoder.
//
// Defaults: automatic strategy detection, TailReject, GOMAXPROCS workers and
// DefaultSegmentGroups groups per segment. Requesting a strategy that cannot
// run on this host returns an error wrapping ErrStrategyUnavailable.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		strategyType:  format.StrategyAuto,
		tailPolicy:    format.TailReject,
		workers:       runtime.GOMAXPROCS(0),
		segmentGroups: DefaultSegmentGroups,
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	s, err := Lookup(e.strategyType)
	if err != nil {
		return nil, err
	}
	e.strategy = s

	return e, nil
}

// Strategy returns the resolved strategy used by the encoder.
func (e *Encoder) Strategy() Strategy {
	return e.strategy
}

// TailPolicy returns the configured partial group policy.
func (e *Encoder) TailPolicy() format.TailPolicy {
	return e.tailPolicy
}

// Encode appends the encoding of src to dst and returns the extended slice.
//
// The existing contents of dst are neither read nor modified. If src ends in
// a partial group and the policy is TailReject, Encode returns dst unchanged
// and an error wrapping ErrPartialGroup.
func (e *Encoder) Encode(dst, src []byte) ([]byte, error) {
	full, err := e.splitTail(src)
	if err != nil {
		return dst, err
	}

	dst = encodeGroups(dst, src[:full], e.strategy.Packer)

	return appendTail(dst, src[full:]), nil
}

// EncodeParallel is Encode spread over the configured number of workers.
//
// Full groups are split into segments of SegmentGroups groups. Workers encode
// segments into private pooled buffers which are then concatenated in input
// order, so the result is byte-identical to Encode.
func (e *Encoder) EncodeParallel(dst, src []byte) ([]byte, error) {
	full, err := e.splitTail(src)
	if err != nil {
		return dst, err
	}

	segBytes := e.segmentGroups * GroupSize
	numSegs := (full + segBytes - 1) / segBytes
	if numSegs <= 1 || e.workers == 1 {
		dst = encodeGroups(dst, src[:full], e.strategy.Packer)
		return appendTail(dst, src[full:]), nil
	}

	segs := make([]*pool.ByteBuffer, numSegs)
	defer func() {
		for _, bb := range segs {
			pool.PutSegmentBuffer(bb)
		}
	}()

	next := make(chan int)
	var wg sync.WaitGroup
	for range min(e.workers, numSegs) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				start := i * segBytes
				end := min(start+segBytes, full)

				bb := pool.GetSegmentBuffer()
				bb.Grow(MaxEncodedLen(end - start))
				bb.B = encodeGroups(bb.B, src[start:end], e.strategy.Packer)
				segs[i] = bb
			}
		}()
	}
	for i := range numSegs {
		next <- i
	}
	close(next)
	wg.Wait()

	total := len(src) - full
	for _, bb := range segs {
		total += bb.Len()
	}
	dst = growSlice(dst, total+1)
	for _, bb := range segs {
		dst = append(dst, bb.Bytes()...)
	}

	return appendTail(dst, src[full:]), nil
}

// splitTail returns the length of the full-group prefix of src.
func (e *Encoder) splitTail(src []byte) (int, error) {
	rem := len(src) % GroupSize
	if rem != 0 && e.tailPolicy != format.TailEscapeTail {
		return 0, fmt.Errorf("%w: %d bytes (%d trailing)", ErrPartialGroup, len(src), rem)
	}

	return len(src) - rem, nil
}

func encodeGroups(dst, src []byte, p LanePacker) []byte {
	for off := 0; off+GroupSize <= len(src); off += GroupSize {
		group := src[off : off+GroupSize : off+GroupSize]
		gt, lt := p.Pack(group)
		dst = appendUnit(dst, group, gt, lt)
	}

	return dst
}

// appendTail writes a short escape unit for 1..7 trailing samples.
func appendTail(dst, tail []byte) []byte {
	if len(tail) == 0 {
		return dst
	}
	dst = append(dst, Marker)

	return append(dst, tail...)
}

func growSlice(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
