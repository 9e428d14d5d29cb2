package sam

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the record type prefix of a SAM header line.
type Kind string

const (
	KindHeader            Kind = "@HD"
	KindReferenceSequence Kind = "@SQ"
	KindReadGroup         Kind = "@RG"
	KindProgram           Kind = "@PG"
	KindComment           Kind = "@CO"
)

// Tag is a two-character header field tag.
type Tag string

const (
	TagVersion         Tag = "VN"
	TagSortOrder       Tag = "SO"
	TagGroupOrder      Tag = "GO"
	TagName            Tag = "SN"
	TagLength          Tag = "LN"
	TagMD5             Tag = "M5"
	TagID              Tag = "ID"
	TagPlatform        Tag = "PL"
	TagSample          Tag = "SM"
	TagProgramName     Tag = "PN"
	TagCommandLine     Tag = "CL"
	TagPreviousProgram Tag = "PP"
	TagDescription     Tag = "DS"
)

var (
	ErrInvalidRecordKind = errors.New("invalid header record kind")
	ErrInvalidField      = errors.New("invalid header record field")
)

type Field struct {
	Tag   Tag
	Value string
}

// Record is one raw header line split into its tag/value fields. Comment
// records carry no fields, only the comment text.
type Record struct {
	Kind    Kind
	Fields  []Field
	Comment string
}

// ParseRecord splits one tab-delimited header line.
func ParseRecord(line string) (Record, error) {

	var record Record

	pieces := strings.Split(line, "\t")

	switch Kind(pieces[0]) {
	case KindHeader, KindReferenceSequence, KindReadGroup, KindProgram:
		record.Kind = Kind(pieces[0])
	case KindComment:
		record.Kind = KindComment
		record.Comment = strings.Join(pieces[1:], "\t")
		return record, nil
	default:
		return record, fmt.Errorf("%w: %q", ErrInvalidRecordKind, pieces[0])
	}

	for _, piece := range pieces[1:] {
		tag, value, found := strings.Cut(piece, ":")

		if !found || len(tag) != 2 {
			return record, fmt.Errorf("%w: %q", ErrInvalidField, piece)
		}

		record.Fields = append(record.Fields, Field{Tag: Tag(tag), Value: value})
	}

	return record, nil
}
