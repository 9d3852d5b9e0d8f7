package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/restream/format"
)

func TestAnalyze(t *testing.T) {
	enc := newTestEncoder(t, WithTailPolicy(format.TailEscapeTail))

	src := []byte{
		0, 0, 0, 0, 0, 0, 0, 0, // bitmap
		255, 255, 0, 255, 0, 255, 0, 255, // collision
		0, 0, 0, 0, 0, 0, 0, 128, // escape
		1, 2, // tail
	}

	st, err := enc.Analyze(src)
	require.NoError(t, err)
	require.Equal(t, 3, st.Groups)
	require.Equal(t, 1, st.BitmapUnits)
	require.Equal(t, 2, st.EscapeUnits)
	require.Equal(t, 1, st.Collisions)
	require.Equal(t, 2, st.TailSamples)
	require.Equal(t, len(src), st.OriginalSize)

	encoded, err := enc.Encode(nil, src)
	require.NoError(t, err)
	require.Equal(t, len(encoded), st.EncodedSize)
	require.InDelta(t, float64(len(src))/float64(len(encoded)), st.Ratio(), 1e-9)
	require.InDelta(t, 2.0/3.0, st.EscapeRate(), 1e-9)
}

func TestAnalyze_PartialRejected(t *testing.T) {
	enc := newTestEncoder(t)
	_, err := enc.Analyze(make([]byte, 9))
	require.ErrorIs(t, err, ErrPartialGroup)
}

func TestStats_ZeroGuards(t *testing.T) {
	var st Stats
	require.Zero(t, st.Ratio())
	require.Zero(t, st.EscapeRate())
}
