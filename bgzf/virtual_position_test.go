package bgzf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVirtualPositionPackUnpack(t *testing.T) {

	vp, err := NewVirtualPosition(3741, 12)
	require.NoError(t, err)

	require.Equal(t, int64(3741), vp.CompressedOffset())
	require.Equal(t, 12, vp.UncompressedOffset())
	require.Equal(t, VirtualPosition(3741<<16|12), vp)
}

func TestVirtualPositionRange(t *testing.T) {

	_, err := NewVirtualPosition(0, 0)
	require.NoError(t, err)

	_, err = NewVirtualPosition(MaxCompressedOffset, 0xffff)
	require.NoError(t, err)

	_, err = NewVirtualPosition(MaxCompressedOffset+1, 0)
	require.ErrorIs(t, err, ErrInvalidVirtualPosition)

	_, err = NewVirtualPosition(0, 0x10000)
	require.ErrorIs(t, err, ErrInvalidVirtualPosition)

	_, err = NewVirtualPosition(-1, 0)
	require.ErrorIs(t, err, ErrInvalidVirtualPosition)

	_, err = NewVirtualPosition(0, -1)
	require.ErrorIs(t, err, ErrInvalidVirtualPosition)
}

// positions must order exactly like the logical bytes they address
func TestVirtualPositionOrdering(t *testing.T) {

	pairs := [][2]int64{
		{0, 0},
		{0, 1},
		{0, 0xffff},
		{1, 0},
		{28, 0},
		{28, 500},
		{1 << 40, 0},
		{MaxCompressedOffset, 0xffff},
	}

	var prev VirtualPosition

	for i, p := range pairs {
		vp, err := NewVirtualPosition(p[0], int(p[1]))
		require.NoError(t, err)

		if i > 0 {
			require.Less(t, uint64(prev), uint64(vp))
		}
		prev = vp
	}
}
