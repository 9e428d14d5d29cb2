package bam

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dot5enko/simple-seq-io/bits"
)

// Reader decodes auxiliary fields sequentially from a raw byte source.
type Reader struct {
	br *bits.BitsReader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bits.NewReader(r, binary.LittleEndian)}
}

// ReadField decodes the next field. At the end of the data run it returns
// nil, io.EOF.
func (r *Reader) ReadField() (*Field, error) {

	var tag Tag

	err := r.br.ReadBytes(2, tag[:])
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode field tag: %w", err)
	}

	rawType, err := r.br.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("unable to decode value type for %s: %w", tag, err)
	}

	field := &Field{Tag: tag, Type: ValueType(rawType)}

	if field.Type == TypeArray {
		return r.readArray(field)
	}

	field.Value, err = r.readScalar(field.Type)
	if err != nil {
		return nil, fmt.Errorf("unable to decode value for %s: %w", tag, err)
	}

	return field, nil
}

func (r *Reader) readScalar(t ValueType) (any, error) {
	switch t {
	case TypeChar:
		return r.br.ReadU8()
	case TypeInt8:
		return r.br.ReadI8()
	case TypeUint8:
		return r.br.ReadU8()
	case TypeInt16:
		return r.br.ReadI16()
	case TypeUint16:
		return r.br.ReadU16()
	case TypeInt32:
		return r.br.ReadI32()
	case TypeUint32:
		return r.br.ReadU32()
	case TypeFloat:
		return r.br.ReadF32()
	case TypeString, TypeHex:
		return r.br.ReadCString()
	default:
		return nil, fmt.Errorf("unsupported value type %q", t)
	}
}

func (r *Reader) readArray(field *Field) (*Field, error) {

	rawSubtype, err := r.br.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("unable to decode array subtype for %s: %w", field.Tag, err)
	}
	field.Subtype = ValueType(rawSubtype)

	count, err := r.br.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("unable to decode array length for %s: %w", field.Tag, err)
	}

	switch field.Subtype {
	case TypeInt8:
		field.Value, err = readSlice(count, r.br.ReadI8)
	case TypeUint8:
		field.Value, err = readSlice(count, r.br.ReadU8)
	case TypeInt16:
		field.Value, err = readSlice(count, r.br.ReadI16)
	case TypeUint16:
		field.Value, err = readSlice(count, r.br.ReadU16)
	case TypeInt32:
		field.Value, err = readSlice(count, r.br.ReadI32)
	case TypeUint32:
		field.Value, err = readSlice(count, r.br.ReadU32)
	case TypeFloat:
		field.Value, err = readSlice(count, r.br.ReadF32)
	default:
		return nil, fmt.Errorf("unsupported array subtype %q for %s", field.Subtype, field.Tag)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to decode array values for %s: %w", field.Tag, err)
	}

	return field, nil
}

func readSlice[T any](count uint32, read func() (T, error)) ([]T, error) {

	out := make([]T, 0, count)

	for i := uint32(0); i < count; i++ {
		v, err := read()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
