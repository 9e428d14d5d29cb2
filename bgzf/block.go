package bgzf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dot5enko/simple-seq-io/bits"
	"github.com/dot5enko/simple-seq-io/compression"
)

// writeBlockHeader encodes the fixed 18-byte gzip member header carrying the
// BC subfield with BSIZE (total block size on disk, minus one).
func writeBlockHeader(w io.Writer, cdataLen int) error {

	total := cdataLen + BlockHeaderSize + BlockTrailerSize
	if total > MaxBlockSize {
		return ErrBlockOverflow
	}

	var raw [BlockHeaderSize]byte
	bw := bits.NewEncodeBuffer(raw[:], binary.LittleEndian)

	bw.WriteByte(gzMagic1)
	bw.WriteByte(gzMagic2)
	bw.WriteByte(gzMethodDeflate)
	bw.WriteByte(gzFlagExtra)
	bw.EmptyBytes(4) // mtime, none
	bw.WriteByte(0)  // xfl
	bw.WriteByte(gzOSUnknown)
	bw.PutUint16(bgzfExtraLen)
	bw.WriteByte(bgzfSubfieldID1)
	bw.WriteByte(bgzfSubfieldID2)
	bw.PutUint16(bgzfSubfieldLen)
	bw.PutUint16(uint16(total - 1))

	_, err := w.Write(bw.Bytes())
	return err
}

// readBlockHeader decodes one member header and returns BSIZE and the extra
// field length actually present. A clean underlying EOF before the first
// byte is reported as io.EOF so the caller can tell stream exhaustion from a
// malformed header.
func readBlockHeader(r io.Reader) (bsize int, xlen int, err error) {

	var fixed [12]byte

	_, err = io.ReadFull(r, fixed[:])
	if err == io.EOF {
		return 0, 0, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return 0, 0, fmt.Errorf("%w: short block header", ErrTruncated)
	}
	if err != nil {
		return 0, 0, err
	}

	if fixed[0] != gzMagic1 || fixed[1] != gzMagic2 {
		return 0, 0, fmt.Errorf("%w: bad magic bytes %#02x %#02x", ErrInvalidHeader, fixed[0], fixed[1])
	}
	if fixed[2] != gzMethodDeflate {
		return 0, 0, fmt.Errorf("%w: unsupported compression method %#02x", ErrInvalidHeader, fixed[2])
	}
	if fixed[3]&gzFlagExtra == 0 {
		return 0, 0, fmt.Errorf("%w: extra field flag not set", ErrInvalidHeader)
	}

	xlen = int(binary.LittleEndian.Uint16(fixed[10:12]))

	extra := make([]byte, xlen)
	if _, err = io.ReadFull(r, extra); err != nil {
		return 0, 0, fmt.Errorf("%w: short extra field", ErrTruncated)
	}

	// scan subfields for BC
	for i := 0; i+4 <= len(extra); {
		slen := int(binary.LittleEndian.Uint16(extra[i+2 : i+4]))

		if extra[i] == bgzfSubfieldID1 && extra[i+1] == bgzfSubfieldID2 {
			if slen != bgzfSubfieldLen || i+4+slen > len(extra) {
				return 0, 0, fmt.Errorf("%w: malformed BC subfield", ErrInvalidHeader)
			}
			bsize = int(binary.LittleEndian.Uint16(extra[i+4 : i+6]))
			return bsize, xlen, nil
		}

		i += 4 + slen
	}

	return 0, 0, fmt.Errorf("%w: BC subfield not found", ErrInvalidHeader)
}

func writeBlockTrailer(w io.Writer, checksum uint32, uncompressedLen uint32) error {

	var raw [BlockTrailerSize]byte
	bw := bits.NewEncodeBuffer(raw[:], binary.LittleEndian)

	bw.PutUint32(checksum)
	bw.PutUint32(uncompressedLen)

	_, err := w.Write(bw.Bytes())
	return err
}

func readBlockTrailer(r io.Reader) (checksum uint32, uncompressedLen uint32, err error) {

	var raw [BlockTrailerSize]byte

	if _, err = io.ReadFull(r, raw[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: short block trailer", ErrTruncated)
	}

	checksum = binary.LittleEndian.Uint32(raw[0:4])
	uncompressedLen = binary.LittleEndian.Uint32(raw[4:8])

	return checksum, uncompressedLen, nil
}

// DecodeBlockAt decodes the single block starting at coffset and returns its
// decompressed payload together with the offset of the next block. It is the
// random-access counterpart of Reader.readBlock, intended for callers that
// maintain their own block cache.
func DecodeBlockAt(ra io.ReaderAt, coffset int64) (data []byte, next int64, err error) {

	sr := io.NewSectionReader(ra, coffset, MaxBlockSize)

	bsize, xlen, err := readBlockHeader(sr)
	if err == io.EOF {
		return nil, 0, fmt.Errorf("%w: no block at offset %d", ErrTruncated, coffset)
	}
	if err != nil {
		return nil, 0, err
	}

	cdataLen := bsize + 1 - 12 - xlen - BlockTrailerSize
	if cdataLen < 0 {
		return nil, 0, fmt.Errorf("%w: BSIZE too small for declared extra field", ErrInvalidHeader)
	}

	cdata := make([]byte, cdataLen)
	if _, err = io.ReadFull(sr, cdata); err != nil {
		return nil, 0, fmt.Errorf("%w: short compressed payload at offset %d", ErrTruncated, coffset)
	}

	checksum, isize, err := readBlockTrailer(sr)
	if err != nil {
		return nil, 0, err
	}
	if isize > MaxBlockSize {
		return nil, 0, fmt.Errorf("%w: ISIZE %d exceeds maximum block size", ErrCorrupt, isize)
	}

	dst := make([]byte, MaxBlockSize)

	n, err := compression.NewInflater().Inflate(cdata, dst)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: inflate failed at offset %d: %v", ErrCorrupt, coffset, err)
	}

	if err = verifyBlock(dst[:n], checksum, isize, coffset); err != nil {
		return nil, 0, err
	}

	return dst[:n], coffset + int64(bsize) + 1, nil
}
