package encoding

import (
	"fmt"
	"math/bits"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/cpu"

	"github.com/arloliu/restream/format"
)

// StrategyEnvVar overrides strategy detection. Accepted values are "scalar",
// "swar" and "auto". The override can only select a strategy that is
// available; anything faster than the host supports falls back to detection.
const StrategyEnvVar = "RESTREAM_STRATEGY"

// Strategy is a registered LanePacker together with its availability probe.
type Strategy struct {
	Type   format.StrategyType
	Packer LanePacker

	// Accelerated marks packers that are optimizations of ScalarPacker.
	Accelerated bool

	// Available reports whether the packer can run on this host. Nil means always.
	Available func() bool
}

// IsAvailable reports whether s can run on this host.
func (s Strategy) IsAvailable() bool {
	return s.Available == nil || s.Available()
}

func (s Strategy) String() string {
	return s.Type.String()
}

var (
	registryMu sync.RWMutex
	registry   = map[format.StrategyType]Strategy{
		format.StrategyScalar: {Type: format.StrategyScalar, Packer: ScalarPacker{}},
	}
)

// Register adds or replaces a strategy. It is meant to be called from init
// functions of build-specific files and panics on invalid input.
func Register(s Strategy) {
	if s.Type == format.StrategyAuto {
		panic("encoding: cannot register the auto strategy")
	}
	if s.Packer == nil {
		panic(fmt.Sprintf("encoding: strategy %s has no packer", s.Type))
	}

	registryMu.Lock()
	registry[s.Type] = s
	registryMu.Unlock()
}

// Strategies returns all registered strategies ordered by type.
func Strategies() []Strategy {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := maps.Keys(registry)
	slices.Sort(types)

	out := make([]Strategy, 0, len(types))
	for _, t := range types {
		out = append(out, registry[t])
	}

	return out
}

// Lookup returns the strategy registered for t. StrategyAuto resolves through
// Detect. Unregistered types yield ErrUnknownStrategy and strategies that
// cannot run here yield ErrStrategyUnavailable.
func Lookup(t format.StrategyType) (Strategy, error) {
	if t == format.StrategyAuto {
		return Detect(), nil
	}

	registryMu.RLock()
	s, ok := registry[t]
	registryMu.RUnlock()

	if !ok {
		return Strategy{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, t)
	}
	if !s.IsAvailable() {
		return Strategy{}, fmt.Errorf("%w: %s on %s", ErrStrategyUnavailable, t, runtime.GOARCH)
	}

	return s, nil
}

// Detect picks the strategy to use when none was requested explicitly.
//
// Without an override it returns the fastest available accelerated strategy,
// or the scalar reference when there is none.
func Detect() Strategy {
	detected := detectFromHost()

	val, _ := os.LookupEnv(StrategyEnvVar)
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "scalar", "none", "disabled":
		s, _ := Lookup(format.StrategyScalar)
		return s
	case "swar":
		if s, err := Lookup(format.StrategySWAR); err == nil {
			return s
		}
	}

	return detected
}

func detectFromHost() Strategy {
	strategies := Strategies()
	for i := len(strategies) - 1; i >= 0; i-- {
		s := strategies[i]
		if s.Accelerated && s.IsAvailable() {
			return s
		}
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	return registry[format.StrategyScalar]
}

// HostFeatures describes the host properties relevant to strategy selection.
type HostFeatures struct {
	Arch     string
	WordBits int
	SIMD     []string
}

func (h HostFeatures) String() string {
	simd := "none"
	if len(h.SIMD) > 0 {
		simd = strings.Join(h.SIMD, ",")
	}

	return fmt.Sprintf("%s/%d-bit simd=%s", h.Arch, h.WordBits, simd)
}

// Host reports the features of the running machine.
func Host() HostFeatures {
	h := HostFeatures{
		Arch:     runtime.GOARCH,
		WordBits: bits.UintSize,
	}

	switch {
	case cpu.X86.HasAVX2:
		h.SIMD = append(h.SIMD, "sse2", "avx2")
	case cpu.X86.HasSSE2:
		h.SIMD = append(h.SIMD, "sse2")
	}
	if cpu.ARM64.HasASIMD {
		h.SIMD = append(h.SIMD, "asimd")
	}
	if cpu.ARM.HasNEON {
		h.SIMD = append(h.SIMD, "neon")
	}

	return h
}
