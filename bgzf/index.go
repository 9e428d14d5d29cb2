package bgzf

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/dot5enko/simple-seq-io/bits"
)

// IndexEntry marks the start of a block: its offset in the compressed file
// and the logical-stream offset of its first decompressed byte.
type IndexEntry struct {
	CompressedOffset   uint64
	UncompressedOffset uint64
}

// Index is the .gzi block index: entries for every data block except the
// first, ordered by both offsets at once (block order on disk is logical
// order). The first block's (0, 0) entry is implicit.
type Index []IndexEntry

// Query resolves a logical-stream offset to the virtual position addressing
// that byte.
func (idx Index) Query(uoffset uint64) (VirtualPosition, error) {

	// first entry past the target, minus one, is the containing block
	i := sort.Search(len(idx), func(i int) bool {
		return idx[i].UncompressedOffset > uoffset
	})

	var coff, uoff uint64
	if i > 0 {
		coff = idx[i-1].CompressedOffset
		uoff = idx[i-1].UncompressedOffset
	}

	vp, err := NewVirtualPosition(int64(coff), int(uoffset-uoff))
	if err != nil {
		return 0, fmt.Errorf("offset %d is not addressable through the index: %w", uoffset, err)
	}

	return vp, nil
}

// Write encodes the index in the .gzi layout: an entry count followed by
// little-endian u64 pairs.
func (idx Index) Write(w io.Writer) error {

	bw := bits.NewEncodeBuffer(make([]byte, 8+16*len(idx)), binary.LittleEndian)

	bw.PutUint64(uint64(len(idx)))
	for _, e := range idx {
		bw.PutUint64(e.CompressedOffset)
		bw.PutUint64(e.UncompressedOffset)
	}

	_, err := w.Write(bw.Bytes())
	return err
}

func ReadIndex(r io.Reader) (Index, error) {

	br := bits.NewReader(r, binary.LittleEndian)

	count, err := br.ReadU64()
	if err != nil {
		return nil, fmt.Errorf("unable to decode index entry count: %w", err)
	}

	idx := make(Index, 0, count)

	for i := uint64(0); i < count; i++ {
		var e IndexEntry

		if e.CompressedOffset, err = br.ReadU64(); err != nil {
			return nil, fmt.Errorf("unable to decode index entry %d: %w", i, err)
		}
		if e.UncompressedOffset, err = br.ReadU64(); err != nil {
			return nil, fmt.Errorf("unable to decode index entry %d: %w", i, err)
		}

		idx = append(idx, e)
	}

	return idx, nil
}

// BuildIndex scans a compressed stream and records every block boundary.
// Only block headers and trailers are decoded; payloads are skipped without
// decompression.
func BuildIndex(r io.Reader) (Index, error) {

	var idx Index

	var coff, uoff uint64
	lastEmpty := false

	for {
		bsize, xlen, err := readBlockHeader(r)
		if err == io.EOF {
			if !lastEmpty {
				return nil, fmt.Errorf("%w at offset %d", ErrMissingEOF, coff)
			}
			return idx, nil
		}
		if err != nil {
			return nil, fmt.Errorf("block at offset %d: %w", coff, err)
		}

		cdataLen := bsize + 1 - 12 - xlen - BlockTrailerSize
		if cdataLen < 0 {
			return nil, fmt.Errorf("%w: block at offset %d declares payload of %d bytes", ErrInvalidHeader, coff, cdataLen)
		}

		if _, err = io.CopyN(io.Discard, r, int64(cdataLen)); err != nil {
			return nil, fmt.Errorf("%w: short compressed payload at offset %d", ErrTruncated, coff)
		}

		_, isize, err := readBlockTrailer(r)
		if err != nil {
			return nil, fmt.Errorf("block at offset %d: %w", coff, err)
		}

		if coff > 0 && isize > 0 {
			idx = append(idx, IndexEntry{CompressedOffset: coff, UncompressedOffset: uoff})
		}

		coff += uint64(bsize) + 1
		uoff += uint64(isize)
		lastEmpty = isize == 0
	}
}
