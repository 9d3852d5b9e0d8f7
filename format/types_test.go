package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want StrategyType
	}{
		{"", StrategyAuto},
		{"auto", StrategyAuto},
		{"Scalar", StrategyScalar},
		{"slow", StrategyScalar},
		{"SWAR", StrategySWAR},
		{"fast", StrategySWAR},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStrategy("neon")
	require.Error(t, err)
}

func TestParseTailPolicy(t *testing.T) {
	p, err := ParseTailPolicy("")
	require.NoError(t, err)
	require.Equal(t, TailReject, p)

	p, err = ParseTailPolicy("escape-tail")
	require.NoError(t, err)
	require.Equal(t, TailEscapeTail, p)

	_, err = ParseTailPolicy("pad")
	require.Error(t, err)
}

func TestParseCompression(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	_, err := ParseCompression("brotli")
	require.Error(t, err)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "swar", StrategySWAR.String())
	require.Equal(t, "unknown", StrategyType(9).String())
	require.Equal(t, "escape-tail", TailEscapeTail.String())
	require.Equal(t, "unknown", TailPolicy(0).String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
