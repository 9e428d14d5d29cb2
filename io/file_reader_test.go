package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileReader(t *testing.T) {

	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	f := NewFileReader(path)
	require.True(t, f.Exists())

	// access before Open is rejected
	_, err := f.ReadAt(make([]byte, 1), 0)
	require.ErrorIs(t, err, ErrNotOpened)
	_, err = f.Size()
	require.ErrorIs(t, err, ErrNotOpened)

	require.NoError(t, f.Open())
	defer f.Close()

	size, err := f.Size()
	require.NoError(t, err)
	require.Equal(t, int64(10), size)

	out := make([]byte, 4)
	n, err := f.ReadAt(out, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("3456"), out)
}

func TestFileReaderMissingFile(t *testing.T) {

	f := NewFileReader(filepath.Join(t.TempDir(), "nope"))
	require.False(t, f.Exists())
	require.Error(t, f.Open())

	// Close on a never-opened reader is a no-op
	require.NoError(t, f.Close())
}
