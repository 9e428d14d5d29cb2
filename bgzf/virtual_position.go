package bgzf

import "fmt"

// VirtualPosition addresses a byte of the decompressed logical stream as
// (compressed offset of the containing block << 16) | (offset within the
// decompressed block). The natural uint64 ordering of packed values matches
// logical byte order: blocks appear on disk in logical order, so comparing
// compressed offsets first and intra-block offsets second is exactly the
// integer comparison of the packed value.
type VirtualPosition uint64

const (
	compressedOffsetBits   = 48
	uncompressedOffsetMask = 1<<16 - 1

	MaxCompressedOffset = 1<<compressedOffsetBits - 1
)

// NewVirtualPosition packs the pair, failing when either component is out of
// range instead of silently truncating.
func NewVirtualPosition(compressedOffset int64, uncompressedOffset int) (VirtualPosition, error) {

	if compressedOffset < 0 || compressedOffset > MaxCompressedOffset {
		return 0, fmt.Errorf("%w: compressed offset %d out of range", ErrInvalidVirtualPosition, compressedOffset)
	}

	if uncompressedOffset < 0 || uncompressedOffset > uncompressedOffsetMask {
		return 0, fmt.Errorf("%w: uncompressed offset %d out of range", ErrInvalidVirtualPosition, uncompressedOffset)
	}

	return VirtualPosition(uint64(compressedOffset)<<16 | uint64(uncompressedOffset)), nil
}

func (p VirtualPosition) CompressedOffset() int64 {
	return int64(p >> 16)
}

func (p VirtualPosition) UncompressedOffset() int {
	return int(p & uncompressedOffsetMask)
}

func (p VirtualPosition) String() string {
	return fmt.Sprintf("%d:%d", p.CompressedOffset(), p.UncompressedOffset())
}
