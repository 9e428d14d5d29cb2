package sam

import (
	"fmt"
	"strconv"
	"strings"
)

// ReferenceSequence is one @SQ header record. SN and LN are mandatory; any
// other tags are kept verbatim.
type ReferenceSequence struct {
	Name   string
	Length int32

	Fields map[Tag]string
}

func NewReferenceSequence(name string, length int32) ReferenceSequence {
	return ReferenceSequence{
		Name:   name,
		Length: length,
		Fields: map[Tag]string{},
	}
}

func parseReferenceSequence(fields []Field) (ReferenceSequence, error) {

	rs := NewReferenceSequence("", 0)

	hasName := false
	hasLength := false

	for _, f := range fields {
		switch f.Tag {
		case TagName:
			rs.Name = f.Value
			hasName = true
		case TagLength:
			length, err := strconv.ParseInt(f.Value, 10, 32)
			if err != nil {
				return rs, fmt.Errorf("invalid value for tag %s: %q", TagLength, f.Value)
			}
			rs.Length = int32(length)
			hasLength = true
		default:
			rs.Fields[f.Tag] = f.Value
		}
	}

	if !hasName {
		return rs, fmt.Errorf("missing required tag: %s", TagName)
	}
	if !hasLength {
		return rs, fmt.Errorf("missing required tag: %s", TagLength)
	}

	return rs, nil
}

func (rs ReferenceSequence) Get(tag Tag) (string, bool) {
	v, ok := rs.Fields[tag]
	return v, ok
}

func (rs ReferenceSequence) String() string {

	var sb strings.Builder

	sb.WriteString(string(KindReferenceSequence))
	fmt.Fprintf(&sb, "\t%s:%s", TagName, rs.Name)
	fmt.Fprintf(&sb, "\t%s:%d", TagLength, rs.Length)

	for tag, value := range rs.Fields {
		fmt.Fprintf(&sb, "\t%s:%s", tag, value)
	}

	return sb.String()
}
