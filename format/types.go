package format

import (
	"fmt"
	"strings"
)

type (
	StrategyType    uint8
	TailPolicy      uint8
	CompressionType uint8
)

const (
	StrategyAuto   StrategyType = 0x0 // StrategyAuto picks the fastest available lane packer.
	StrategyScalar StrategyType = 0x1 // StrategyScalar is the portable reference lane packer.
	StrategySWAR   StrategyType = 0x2 // StrategySWAR packs all 8 lanes in one 64-bit word.

	TailReject     TailPolicy = 0x1 // TailReject fails inputs whose length is not a multiple of 8.
	TailEscapeTail TailPolicy = 0x2 // TailEscapeTail emits a short escape unit for the trailing samples.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no second-stage compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s StrategyType) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyScalar:
		return "scalar"
	case StrategySWAR:
		return "swar"
	default:
		return "unknown"
	}
}

func (p TailPolicy) String() string {
	switch p {
	case TailReject:
		return "reject"
	case TailEscapeTail:
		return "escape-tail"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseStrategy converts a case-insensitive strategy name into a StrategyType.
func ParseStrategy(name string) (StrategyType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StrategyAuto, nil
	case "scalar", "slow":
		return StrategyScalar, nil
	case "swar", "fast":
		return StrategySWAR, nil
	default:
		return StrategyAuto, fmt.Errorf("unknown strategy: %q", name)
	}
}

// ParseTailPolicy converts a case-insensitive policy name into a TailPolicy.
func ParseTailPolicy(name string) (TailPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reject":
		return TailReject, nil
	case "escape-tail", "escape":
		return TailEscapeTail, nil
	default:
		return TailReject, fmt.Errorf("unknown tail policy: %q", name)
	}
}

// ParseCompression converts a case-insensitive codec name into a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression: %q", name)
	}
}
