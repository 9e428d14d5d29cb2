// Package bgzf reads and writes BGZF, the blocked gzip container used by
// binary genomics formats. The compressed stream is a series of independent
// gzip members of bounded size, which makes random access possible: a 64-bit
// virtual position addresses any byte of the decompressed stream as
// (block start in the compressed file, offset within the decompressed block).
package bgzf

import "errors"

const (
	BlockHeaderSize  = 18
	BlockTrailerSize = 8

	// MaxBlockSize bounds the uncompressed payload of a single block.
	MaxBlockSize = 0x10000
)

// gzip member fields fixed by the BGZF profile
const (
	gzMagic1        = 0x1f
	gzMagic2        = 0x8b
	gzMethodDeflate = 0x08
	gzFlagExtra     = 0x04
	gzOSUnknown     = 0xff

	bgzfExtraLen    = 6
	bgzfSubfieldID1 = 0x42 // 'B'
	bgzfSubfieldID2 = 0x43 // 'C'
	bgzfSubfieldLen = 2
)

var (
	ErrInvalidHeader          = errors.New("bgzf: invalid block header")
	ErrCorrupt                = errors.New("bgzf: corrupt block")
	ErrTruncated              = errors.New("bgzf: truncated stream")
	ErrMissingEOF             = errors.New("bgzf: stream ended without EOF marker block")
	ErrInvalidVirtualPosition = errors.New("bgzf: invalid virtual position")
	ErrBlockOverflow          = errors.New("bgzf: compressed block exceeds maximum block size")
	ErrNotSeekable            = errors.New("bgzf: underlying source is not seekable")
)

// eofMarker is the fixed empty block terminating every conformant stream.
// SAM spec § 4.1.2.
var eofMarker = []byte{
	0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x06, 0x00, 0x42, 0x43, 0x02, 0x00,
	0x1b, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// EOFMarker returns a copy of the 28-byte end-of-file marker block.
func EOFMarker() []byte {
	out := make([]byte, len(eofMarker))
	copy(out, eofMarker)
	return out
}
