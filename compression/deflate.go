package compression

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
)

var (
	ErrPayloadOverflow = errors.New("decompressed payload exceeds output buffer")
)

const DefaultLevel = flate.DefaultCompression

// Deflater compresses raw block payloads into a reusable output buffer. One
// Deflater serves one goroutine.
type Deflater struct {
	zw  *flate.Writer
	out bytes.Buffer
}

func NewDeflater(level int) (*Deflater, error) {

	zw, err := flate.NewWriter(io.Discard, level)
	if err != nil {
		return nil, err
	}

	return &Deflater{zw: zw}, nil
}

// Deflate compresses src as a single raw deflate stream. The returned slice
// points into the Deflater's internal buffer and is only valid until the
// next call.
func (d *Deflater) Deflate(src []byte) ([]byte, error) {

	d.out.Reset()
	d.zw.Reset(&d.out)

	if _, err := d.zw.Write(src); err != nil {
		return nil, err
	}

	if err := d.zw.Close(); err != nil {
		return nil, err
	}

	return d.out.Bytes(), nil
}

// Inflater decompresses raw deflate streams. One Inflater serves one
// goroutine.
type Inflater struct {
	br *bytes.Reader
	zr io.ReadCloser
}

func NewInflater() *Inflater {

	br := bytes.NewReader(nil)

	return &Inflater{
		br: br,
		zr: flate.NewReader(br),
	}
}

// Inflate decompresses src into dst and returns the number of bytes
// produced. The stream must decode to at most len(dst) bytes; the caller
// compares the returned count against the expected size.
func (i *Inflater) Inflate(src, dst []byte) (int, error) {

	i.br.Reset(src)

	resetErr := i.zr.(flate.Resetter).Reset(i.br, nil)
	if resetErr != nil {
		return 0, resetErr
	}

	// a plain io.EOF is the clean end of the stream; anything else,
	// including io.ErrUnexpectedEOF from a cut-off stream, is an error
	n := 0
	for n < len(dst) {
		m, err := i.zr.Read(dst[n:])
		n += m

		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}

	// dst is full, the stream has to end exactly here
	var probe [1]byte
	m, err := i.zr.Read(probe[:])
	if m != 0 {
		return n, ErrPayloadOverflow
	}
	if err != nil && err != io.EOF {
		return n, err
	}

	return n, nil
}
