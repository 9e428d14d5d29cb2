package bgzf

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterSingleBlock(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)

	n, err := w.Write([]byte("seq-io!"))
	require.NoError(t, err)
	require.Equal(t, 7, n)

	require.NoError(t, w.Close())

	out := buf.Bytes()
	require.Equal(t, eofMarker, out[len(out)-len(eofMarker):])

	// preceding bytes must be exactly one valid block holding the payload
	data, next, err := DecodeBlockAt(bytes.NewReader(out), 0)
	require.NoError(t, err)
	require.Equal(t, []byte("seq-io!"), data)
	require.Equal(t, int64(len(out)-len(eofMarker)), next)

	require.Equal(t, 1, w.BlocksWritten())
}

func TestWriterEmptyStreamIsJustEOFMarker(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.Close())

	require.Equal(t, eofMarker, buf.Bytes())
	require.Equal(t, 0, w.BlocksWritten())
}

func TestWriterCloseIsIdempotent(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	require.Equal(t, len(eofMarker), buf.Len())
}

func TestWriterFlushOnEmptyBufferIsNoop(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.Flush())
	require.NoError(t, w.Flush())
	require.Zero(t, buf.Len())
}

func patternBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('A' + i%23)
	}
	return out
}

func TestWriterBlockBoundaries(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)

	_, err := w.Write(patternBytes(MaxBlockSize))
	require.NoError(t, err)

	_, err = w.Write([]byte{'x'})
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.Equal(t, 2, w.BlocksWritten())

	// first block carries exactly MaxBlockSize bytes, second the single byte
	out := bytes.NewReader(buf.Bytes())

	data, next, err := DecodeBlockAt(out, 0)
	require.NoError(t, err)
	require.Len(t, data, MaxBlockSize)

	data, _, err = DecodeBlockAt(out, next)
	require.NoError(t, err)
	require.Equal(t, []byte{'x'}, data)
}

func TestWriterBlockCount(t *testing.T) {

	for _, n := range []int{1, MaxBlockSize - 1, MaxBlockSize, MaxBlockSize + 1, 3*MaxBlockSize + 17} {
		var buf bytes.Buffer

		w := NewWriter(&buf)
		_, err := w.Write(patternBytes(n))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		want := (n + MaxBlockSize - 1) / MaxBlockSize
		require.Equal(t, want, w.BlocksWritten(), "for %d input bytes", n)
	}
}

func TestWriterVirtualPositionsIncrease(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)

	var positions []VirtualPosition

	payload := patternBytes(3*MaxBlockSize + 100)
	for off := 0; off < len(payload); off += 997 {
		positions = append(positions, w.VirtualPosition())

		end := off + 997
		if end > len(payload) {
			end = len(payload)
		}
		_, err := w.Write(payload[off:end])
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	for i := 1; i < len(positions); i++ {
		require.Less(t, uint64(positions[i-1]), uint64(positions[i]))
	}
}

func TestWriterChecksumSensitivity(t *testing.T) {

	var buf bytes.Buffer

	w := NewWriter(&buf)
	_, err := w.Write(patternBytes(5000))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	clean := buf.Bytes()
	payloadEnd := len(clean) - len(eofMarker) - BlockTrailerSize

	for _, pos := range []int{BlockHeaderSize, (BlockHeaderSize + payloadEnd) / 2, payloadEnd - 1} {
		for bit := 0; bit < 8; bit++ {
			mangled := append([]byte(nil), clean...)
			mangled[pos] ^= 1 << bit

			r := NewReader(bytes.NewReader(mangled))
			_, err := io.ReadAll(r)
			require.Error(t, err, "flipped bit %d of byte %d", bit, pos)
			require.ErrorIs(t, err, ErrCorrupt)
		}
	}
}
