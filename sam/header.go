// Package sam parses the text-based SAM header grammar: tab-delimited
// tag/value records, one per line, prefixed with a record kind. The header
// is the decompressed payload handed over by the bgzf layer in BAM files.
package sam

import (
	"fmt"
	"strings"
)

// Header aggregates all parsed header records in file order.
type Header struct {
	Version   string
	SortOrder string
	Fields    map[Tag]string // remaining @HD tags

	ReferenceSequences []ReferenceSequence
	ReadGroups         []ReadGroup
	Programs           []Program
	Comments           []string
}

// ParseHeader parses a complete header text.
func ParseHeader(s string) (*Header, error) {

	header := &Header{Fields: map[Tag]string{}}

	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}

		record, err := ParseRecord(line)
		if err != nil {
			return nil, err
		}

		switch record.Kind {
		case KindHeader:
			if err := header.parseHeaderLine(record.Fields); err != nil {
				return nil, err
			}
		case KindReferenceSequence:
			rs, err := parseReferenceSequence(record.Fields)
			if err != nil {
				return nil, err
			}
			header.ReferenceSequences = append(header.ReferenceSequences, rs)
		case KindReadGroup:
			rg, err := parseReadGroup(record.Fields)
			if err != nil {
				return nil, err
			}
			header.ReadGroups = append(header.ReadGroups, rg)
		case KindProgram:
			p, err := parseProgram(record.Fields)
			if err != nil {
				return nil, err
			}
			header.Programs = append(header.Programs, p)
		case KindComment:
			header.Comments = append(header.Comments, record.Comment)
		}
	}

	return header, nil
}

func (h *Header) parseHeaderLine(fields []Field) error {

	hasVersion := false

	for _, f := range fields {
		switch f.Tag {
		case TagVersion:
			h.Version = f.Value
			hasVersion = true
		case TagSortOrder:
			h.SortOrder = f.Value
		default:
			h.Fields[f.Tag] = f.Value
		}
	}

	if !hasVersion {
		return fmt.Errorf("missing required tag: %s", TagVersion)
	}

	return nil
}
