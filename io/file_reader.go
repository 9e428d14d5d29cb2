package io

import (
	"errors"
	"os"
)

var ErrNotOpened = errors.New("file not opened")

// FileReader wraps a file handle for offset-addressed access. It implements
// io.ReaderAt so block decoders can read straight from it.
type FileReader struct {
	path   string
	file   *os.File
	opened bool

	exists bool
}

func NewFileReader(path string) *FileReader {

	_, err := os.Stat(path)

	freader := &FileReader{
		path:   path,
		exists: err == nil,
	}

	return freader
}

func (f *FileReader) Exists() bool {
	return f.exists
}

func (f *FileReader) Open() (topErr error) {

	f.file, topErr = os.OpenFile(f.path, os.O_RDONLY, 0644)

	if topErr == nil {
		f.opened = true
	}

	return topErr
}

func (f *FileReader) Close() error {
	if f.opened == false {
		return nil
	}

	return f.file.Close()
}

func (f *FileReader) ReadAt(out []byte, off int64) (int, error) {
	if f.opened == false {
		return 0, ErrNotOpened
	}

	return f.file.ReadAt(out, off)
}

func (f *FileReader) Size() (int64, error) {
	if f.opened == false {
		return 0, ErrNotOpened
	}

	info, err := f.file.Stat()
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}
