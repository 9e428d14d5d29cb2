// Package bam decodes the binary auxiliary data fields of BAM alignment
// records from a decompressed byte run, typically one obtained through the
// bgzf reader.
package bam

import "fmt"

// Tag is a two-byte auxiliary field tag, e.g. NM or MD.
type Tag [2]byte

func (t Tag) String() string {
	return string(t[:])
}

// ValueType is the single-character type code of an auxiliary field value.
type ValueType byte

const (
	TypeChar   ValueType = 'A'
	TypeInt8   ValueType = 'c'
	TypeUint8  ValueType = 'C'
	TypeInt16  ValueType = 's'
	TypeUint16 ValueType = 'S'
	TypeInt32  ValueType = 'i'
	TypeUint32 ValueType = 'I'
	TypeFloat  ValueType = 'f'
	TypeString ValueType = 'Z'
	TypeHex    ValueType = 'H'
	TypeArray  ValueType = 'B'
)

// Field is one decoded tag/value pair. Value holds the Go representation
// matching Type: int8, uint8, int16, uint16, int32, uint32, float32, byte
// (char), string (Z and H), or a typed slice for arrays.
type Field struct {
	Tag     Tag
	Type    ValueType
	Subtype ValueType // element type for arrays, zero otherwise
	Value   any
}

func (f Field) String() string {
	return fmt.Sprintf("%s:%c:%v", f.Tag, f.Type, f.Value)
}
