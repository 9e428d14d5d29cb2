// Package vcf parses VCF meta-information header records, the ##key=value
// lines preceding the data section. Structured values of the form
// <ID=..,Number=..,...> are decoded into ordered key/value fields.
package vcf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidHeaderRecord = errors.New("invalid header record")
)

// StructField is one key=value pair inside a structured header value.
type StructField struct {
	Key   string
	Value string
}

// Value is either a plain string or a structure. IsStruct distinguishes the
// two; Raw is only meaningful for plain values.
type Value struct {
	Raw    string
	Fields []StructField
}

func (v Value) IsStruct() bool {
	return v.Fields != nil
}

func (v Value) Get(key string) (string, bool) {
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// ParseRecord decodes one ##key=value line. A value starting with '<' is
// parsed as a structure; when that fails the whole value is kept as a plain
// string, matching lenient readers.
func ParseRecord(line string) (string, Value, error) {

	rest, found := strings.CutPrefix(line, "##")
	if !found {
		return "", Value{}, fmt.Errorf("%w: missing ## prefix in %q", ErrInvalidHeaderRecord, line)
	}

	key, raw, found := strings.Cut(rest, "=")
	if !found {
		return "", Value{}, fmt.Errorf("%w: missing = in %q", ErrInvalidHeaderRecord, line)
	}

	if strings.HasPrefix(raw, "<") {
		if fields, err := parseStruct(raw); err == nil {
			return key, Value{Fields: fields}, nil
		}
	}

	return key, Value{Raw: raw}, nil
}

func parseStruct(s string) ([]StructField, error) {

	s = s[1:] // opening '<'

	var fields []StructField

	for {
		key, rest, err := scanStructKey(s)
		if err != nil {
			return nil, err
		}

		value, rest, err := scanStructValue(rest)
		if err != nil {
			return nil, err
		}

		fields = append(fields, StructField{Key: key, Value: value})

		if strings.HasPrefix(rest, ",") {
			s = rest[1:]
			continue
		}
		if rest == ">" {
			return fields, nil
		}

		return nil, fmt.Errorf("%w: unterminated structure", ErrInvalidHeaderRecord)
	}
}

func scanStructKey(s string) (string, string, error) {

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}

	if i == 0 || i == len(s) || s[i] != '=' {
		return "", "", fmt.Errorf("%w: malformed structure key", ErrInvalidHeaderRecord)
	}

	return s[:i], s[i+1:], nil
}

func scanStructValue(s string) (string, string, error) {

	if strings.HasPrefix(s, "\"") {
		return scanQuoted(s[1:])
	}

	i := strings.IndexAny(s, ",>")
	if i < 0 {
		return "", "", fmt.Errorf("%w: unterminated structure value", ErrInvalidHeaderRecord)
	}

	return s[:i], s[i:], nil
}

// scanQuoted consumes a quoted string with \" and \\ escapes, starting just
// past the opening quote.
func scanQuoted(s string) (string, string, error) {

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
			if i == len(s) {
				return "", "", fmt.Errorf("%w: dangling escape", ErrInvalidHeaderRecord)
			}
			sb.WriteByte(s[i])
		case '"':
			return sb.String(), s[i+1:], nil
		default:
			sb.WriteByte(s[i])
		}
	}

	return "", "", fmt.Errorf("%w: unterminated quoted string", ErrInvalidHeaderRecord)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
