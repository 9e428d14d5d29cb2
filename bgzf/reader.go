package bgzf

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/dot5enko/simple-seq-io/compression"
)

// Reader decompresses a BGZF stream one block at a time, validating each
// block's checksum and length against its trailer. When the underlying
// source is an io.ReadSeeker the Reader also supports direct seeks to
// virtual positions.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r   io.Reader
	rs  io.ReadSeeker // nil when the source cannot seek
	inf *compression.Inflater

	cdata []byte
	block []byte
	off   int

	blockStart int64 // compressed offset of the current block
	nextBlock  int64 // compressed offset just past the current block

	lastEmpty bool // last decoded block had no payload
	eof       bool
}

func NewReader(r io.Reader) *Reader {

	rs, _ := r.(io.ReadSeeker)

	return &Reader{
		r:     r,
		rs:    rs,
		inf:   compression.NewInflater(),
		cdata: make([]byte, MaxBlockSize),
		block: make([]byte, 0, MaxBlockSize),
	}
}

func verifyBlock(data []byte, checksum uint32, isize uint32, coffset int64) error {

	if uint32(len(data)) != isize {
		return fmt.Errorf("%w: block at offset %d decompressed to %d bytes, trailer declares %d",
			ErrCorrupt, coffset, len(data), isize)
	}

	if got := crc32.ChecksumIEEE(data); got != checksum {
		return fmt.Errorf("%w: block at offset %d checksum %#08x, trailer declares %#08x",
			ErrCorrupt, coffset, got, checksum)
	}

	return nil
}

// readBlock decodes the next block and resets the cursor to its start.
// io.EOF is returned only after the explicit EOF marker block; underlying
// exhaustion without the marker yields ErrMissingEOF.
func (r *Reader) readBlock() error {

	r.blockStart = r.nextBlock

	bsize, xlen, err := readBlockHeader(r.r)
	if err == io.EOF {
		if r.lastEmpty {
			r.eof = true
			return io.EOF
		}
		return fmt.Errorf("%w at offset %d", ErrMissingEOF, r.blockStart)
	}
	if err != nil {
		return fmt.Errorf("block at offset %d: %w", r.blockStart, err)
	}

	cdataLen := bsize + 1 - 12 - xlen - BlockTrailerSize
	if cdataLen < 0 || cdataLen > len(r.cdata) {
		return fmt.Errorf("%w: block at offset %d declares payload of %d bytes", ErrInvalidHeader, r.blockStart, cdataLen)
	}

	if _, err = io.ReadFull(r.r, r.cdata[:cdataLen]); err != nil {
		return fmt.Errorf("%w: short compressed payload at offset %d", ErrTruncated, r.blockStart)
	}

	checksum, isize, err := readBlockTrailer(r.r)
	if err != nil {
		return fmt.Errorf("block at offset %d: %w", r.blockStart, err)
	}
	if isize > MaxBlockSize {
		return fmt.Errorf("%w: block at offset %d declares ISIZE %d", ErrCorrupt, r.blockStart, isize)
	}

	n, err := r.inf.Inflate(r.cdata[:cdataLen], r.block[:MaxBlockSize])
	if err != nil {
		return fmt.Errorf("%w: inflate failed at offset %d: %v", ErrCorrupt, r.blockStart, err)
	}

	if err = verifyBlock(r.block[:n], checksum, isize, r.blockStart); err != nil {
		return err
	}

	r.block = r.block[:n]
	r.off = 0
	r.nextBlock = r.blockStart + int64(bsize) + 1
	r.lastEmpty = n == 0

	return nil
}

// Read serves bytes from the current block cursor, transparently decoding
// the next block when it is exhausted. It returns 0, io.EOF only at a clean
// end of stream.
func (r *Reader) Read(p []byte) (int, error) {

	if r.eof {
		return 0, io.EOF
	}

	for r.off == len(r.block) {
		if err := r.readBlock(); err != nil {
			return 0, err
		}
	}

	n := copy(p, r.block[r.off:])
	r.off += n

	return n, nil
}

// VirtualPosition reports the position of the next byte Read will return.
// At a block boundary this is the start of the next block, so the reported
// intra-block offset always fits in 16 bits.
func (r *Reader) VirtualPosition() VirtualPosition {

	if r.off == len(r.block) {
		p, _ := NewVirtualPosition(r.nextBlock, 0)
		return p
	}

	p, _ := NewVirtualPosition(r.blockStart, r.off)
	return p
}

// Seek repositions the reader at an arbitrary virtual position. The target
// must address the start of a valid block and an offset no greater than that
// block's decompressed length.
func (r *Reader) Seek(pos VirtualPosition) error {

	if r.rs == nil {
		return ErrNotSeekable
	}

	coffset := pos.CompressedOffset()
	uoffset := pos.UncompressedOffset()

	if _, err := r.rs.Seek(coffset, io.SeekStart); err != nil {
		return err
	}

	r.nextBlock = coffset
	r.block = r.block[:0]
	r.off = 0
	r.eof = false
	r.lastEmpty = false

	if err := r.readBlock(); err != nil {
		return fmt.Errorf("%w: %s does not address a block: %v", ErrInvalidVirtualPosition, pos, err)
	}

	if uoffset > len(r.block) {
		return fmt.Errorf("%w: offset %d exceeds block length %d", ErrInvalidVirtualPosition, uoffset, len(r.block))
	}

	r.off = uoffset

	return nil
}
