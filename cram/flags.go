// Package cram exposes bit-flag accessor types for CRAM record fields.
package cram

// Flags is the per-record CRAM flag byte.
type Flags uint8

const (
	FlagQualityScoresStoredAsArray Flags = 0x01
	FlagDetached                   Flags = 0x02
	FlagHasMateDownstream          Flags = 0x04
	FlagDecodeSequenceAsUnknown    Flags = 0x08
)

func (f Flags) IsEmpty() bool {
	return f == 0
}

func (f Flags) AreQualityScoresStoredAsArray() bool {
	return f&FlagQualityScoresStoredAsArray != 0
}

func (f Flags) IsDetached() bool {
	return f&FlagDetached != 0
}

func (f Flags) HasMateDownstream() bool {
	return f&FlagHasMateDownstream != 0
}

func (f Flags) DecodeSequenceAsUnknown() bool {
	return f&FlagDecodeSequenceAsUnknown != 0
}
