package bam

// UCSC binning scheme used by coordinate-sorted alignment indexes: a
// six-level hierarchy over 29-bit positions, 8 children per bin.

const (
	indexWordBits = 29
	nextBinShift  = 3
)

// ValidIndexPos reports whether a zero-based position is addressable by the
// binning scheme.
func ValidIndexPos(i int) bool { return -1 <= i && i <= (1<<indexWordBits-1)-1 }

const (
	level0 = uint16(((1 << (iota * nextBinShift)) - 1) / 7)
	level1
	level2
	level3
	level4
	level5
)

const (
	level0Shift = indexWordBits - (iota * nextBinShift)
	level1Shift
	level2Shift
	level3Shift
	level4Shift
	level5Shift
)

// Reg2Bin returns the smallest bin fully containing [beg,end)
// (zero-based, half-open).
func Reg2Bin(beg, end int) uint16 {
	end--
	switch {
	case beg>>level5Shift == end>>level5Shift:
		return level5 + uint16(beg>>level5Shift)
	case beg>>level4Shift == end>>level4Shift:
		return level4 + uint16(beg>>level4Shift)
	case beg>>level3Shift == end>>level3Shift:
		return level3 + uint16(beg>>level3Shift)
	case beg>>level2Shift == end>>level2Shift:
		return level2 + uint16(beg>>level2Shift)
	case beg>>level1Shift == end>>level1Shift:
		return level1 + uint16(beg>>level1Shift)
	}
	return level0
}

// Reg2Bins returns every bin that may overlap [beg,end) (zero-based,
// half-open).
func Reg2Bins(beg, end int) []uint16 {
	end--
	list := []uint16{level0}
	for _, r := range []struct {
		offset, shift uint16
	}{
		{level1, level1Shift},
		{level2, level2Shift},
		{level3, level3Shift},
		{level4, level4Shift},
		{level5, level5Shift},
	} {
		for k := r.offset + uint16(beg>>r.shift); k <= r.offset+uint16(end>>r.shift); k++ {
			list = append(list, k)
		}
	}
	return list
}
