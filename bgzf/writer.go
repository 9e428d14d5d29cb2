package bgzf

import (
	"hash"
	"hash/crc32"
	"io"

	"github.com/dot5enko/simple-seq-io/compression"
)

// Writer compresses a logical byte stream into BGZF blocks. Block boundaries
// are purely size driven: a block is emitted every MaxBlockSize uncompressed
// bytes, or on an explicit Flush. Close emits the trailing EOF marker block;
// a Writer abandoned without Close loses its buffered tail block, so callers
// that care about errors must Close explicitly.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w   io.Writer
	def *compression.Deflater
	crc hash.Hash32

	block []byte
	ulen  int

	offset   int64 // compressed bytes emitted so far
	utotal   int64 // uncompressed bytes emitted so far
	closed   bool
	blockCnt int

	idx Index
}

func NewWriter(w io.Writer) *Writer {
	bw, _ := NewWriterLevel(w, compression.DefaultLevel)
	return bw
}

func NewWriterLevel(w io.Writer, level int) (*Writer, error) {

	def, err := compression.NewDeflater(level)
	if err != nil {
		return nil, err
	}

	return &Writer{
		w:     w,
		def:   def,
		crc:   crc32.NewIEEE(),
		block: make([]byte, MaxBlockSize),
	}, nil
}

// Write never splits the cap invariant: at most MaxBlockSize uncompressed
// bytes accumulate per block, and a full accumulation buffer is flushed
// before more input is accepted.
func (w *Writer) Write(p []byte) (int, error) {

	total := 0

	for len(p) > 0 {
		n := copy(w.block[w.ulen:], p)

		w.crc.Write(p[:n])
		w.ulen += n
		total += n
		p = p[n:]

		if w.ulen == MaxBlockSize {
			if err := w.Flush(); err != nil {
				return total, err
			}
		}
	}

	return total, nil
}

// Flush writes out the accumulated block, if any, and resets the checksum
// and buffer. Flushing an empty buffer is a no-op.
func (w *Writer) Flush() error {

	if w.ulen == 0 {
		return nil
	}

	if w.offset > 0 {
		w.idx = append(w.idx, IndexEntry{
			CompressedOffset:   uint64(w.offset),
			UncompressedOffset: uint64(w.utotal),
		})
	}

	cdata, err := w.def.Deflate(w.block[:w.ulen])
	if err != nil {
		return err
	}

	if err = writeBlockHeader(w.w, len(cdata)); err != nil {
		return err
	}
	if _, err = w.w.Write(cdata); err != nil {
		return err
	}
	if err = writeBlockTrailer(w.w, w.crc.Sum32(), uint32(w.ulen)); err != nil {
		return err
	}

	w.offset += int64(BlockHeaderSize + len(cdata) + BlockTrailerSize)
	w.utotal += int64(w.ulen)
	w.blockCnt++
	w.ulen = 0
	w.crc.Reset()

	return nil
}

// Index returns the block index accumulated while writing, in the same form
// BuildIndex produces for a finished file.
func (w *Writer) Index() Index {
	return w.idx
}

// Close flushes the pending block and appends the EOF marker. It is
// idempotent; writes after Close are invalid.
func (w *Writer) Close() error {

	if w.closed {
		return nil
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if _, err := w.w.Write(eofMarker); err != nil {
		return err
	}

	w.offset += int64(len(eofMarker))
	w.closed = true

	return nil
}

// VirtualPosition reports the position the next written byte will occupy in
// the logical stream: the current output offset of the in-progress block and
// the number of bytes accumulated in it.
func (w *Writer) VirtualPosition() VirtualPosition {
	p, _ := NewVirtualPosition(w.offset, w.ulen)
	return p
}

// BlocksWritten reports the number of data blocks emitted so far, not
// counting the EOF marker.
func (w *Writer) BlocksWritten() int {
	return w.blockCnt
}
