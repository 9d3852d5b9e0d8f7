package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarPacker_Masks(t *testing.T) {
	tests := []struct {
		name   string
		group  []byte
		gt, lt uint8
	}{
		{"all zero", []byte{0, 0, 0, 0, 0, 0, 0, 0}, 0x00, 0xFF},
		{"all 255", []byte{255, 255, 255, 255, 255, 255, 255, 255}, 0xFF, 0x00},
		{"interior", []byte{1, 0, 0, 0, 0, 0, 0, 254}, 0x81, 0xFF},
		{"mixed", []byte{0, 255, 7, 0, 0, 0, 0, 255}, 0x86, 0x7D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt, lt := ScalarPacker{}.Pack(tt.group)
			require.Equal(t, tt.gt, gt, "gt")
			require.Equal(t, tt.lt, lt, "lt")
		})
	}
}

func TestScalarPacker_ShortGroupPanics(t *testing.T) {
	require.Panics(t, func() { ScalarPacker{}.Pack([]byte{1, 2, 3}) })
}

func TestScalarPacker_ReadsOnlyFirstGroup(t *testing.T) {
	group := []byte{0, 0, 0, 0, 0, 0, 0, 0, 128}
	gt, lt := ScalarPacker{}.Pack(group)
	require.Equal(t, uint8(0), gt)
	require.Equal(t, uint8(0xFF), lt)
}
