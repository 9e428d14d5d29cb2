package bgzf

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIndexMatchesWriter(t *testing.T) {

	payload := patternBytes(3*MaxBlockSize + 777)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	scanned, err := BuildIndex(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, w.Index(), scanned)
	require.Len(t, scanned, 3) // first block is implicit
}

func TestBuildIndexEmptyStream(t *testing.T) {

	idx, err := BuildIndex(bytes.NewReader(compress(t, nil)))
	require.NoError(t, err)
	require.Empty(t, idx)
}

func TestBuildIndexMissingEOFMarker(t *testing.T) {

	stream := compress(t, patternBytes(10))
	stream = stream[:len(stream)-len(eofMarker)]

	_, err := BuildIndex(bytes.NewReader(stream))
	require.ErrorIs(t, err, ErrMissingEOF)
}

func TestIndexQuery(t *testing.T) {

	idx := Index{
		{CompressedOffset: 1000, UncompressedOffset: 65536},
		{CompressedOffset: 2500, UncompressedOffset: 131072},
	}

	cases := []struct {
		uoffset uint64
		coff    int64
		uoff    int
	}{
		{0, 0, 0},
		{100, 0, 100},
		{65535, 0, 65535},
		{65536, 1000, 0},
		{70000, 1000, 4464},
		{131072, 2500, 0},
		{196607, 2500, 65535},
	}

	for _, c := range cases {
		vp, err := idx.Query(c.uoffset)
		require.NoError(t, err, "query for %d", c.uoffset)
		require.Equal(t, c.coff, vp.CompressedOffset(), "query for %d", c.uoffset)
		require.Equal(t, c.uoff, vp.UncompressedOffset(), "query for %d", c.uoffset)
	}

	// residuals past the last block cannot be packed into 16 bits
	_, err := idx.Query(200000)
	require.ErrorIs(t, err, ErrInvalidVirtualPosition)
}

func TestIndexQueryAndSeek(t *testing.T) {

	payload := patternBytes(2*MaxBlockSize + 100)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	idx := w.Index()

	for _, uoffset := range []uint64{0, 1, 65535, 65536, 100000, uint64(len(payload) - 1)} {
		vp, err := idx.Query(uoffset)
		require.NoError(t, err)

		r := NewReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, r.Seek(vp))

		var got [1]byte
		_, err = io.ReadFull(r, got[:])
		require.NoError(t, err)
		require.Equal(t, payload[uoffset], got[0], "byte at %d", uoffset)
	}
}

func TestIndexRoundTrip(t *testing.T) {

	idx := Index{
		{CompressedOffset: 1000, UncompressedOffset: 65536},
		{CompressedOffset: 2500, UncompressedOffset: 131072},
		{CompressedOffset: 9001, UncompressedOffset: 196608},
	}

	var buf bytes.Buffer
	require.NoError(t, idx.Write(&buf))
	require.Len(t, buf.Bytes(), 8+16*3)

	got, err := ReadIndex(&buf)
	require.NoError(t, err)
	require.Equal(t, idx, got)
}

func TestReadIndexTruncated(t *testing.T) {

	idx := Index{{CompressedOffset: 77, UncompressedOffset: 65536}}

	var buf bytes.Buffer
	require.NoError(t, idx.Write(&buf))

	_, err := ReadIndex(bytes.NewReader(buf.Bytes()[:12]))
	require.Error(t, err)
}
