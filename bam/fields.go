package bam

import "io"

// Fields iterates over the auxiliary fields of one record's data run in
// scanner style:
//
//	fields := bam.NewFields(r)
//	for fields.Next() {
//		use(fields.Field())
//	}
//	if err := fields.Err(); err != nil { ... }
type Fields struct {
	reader *Reader

	current *Field
	err     error
}

func NewFields(reader *Reader) *Fields {
	return &Fields{reader: reader}
}

func (f *Fields) Next() bool {

	if f.err != nil {
		return false
	}

	field, err := f.reader.ReadField()
	if err == io.EOF {
		return false
	}
	if err != nil {
		f.err = err
		return false
	}

	f.current = field
	return true
}

func (f *Fields) Field() *Field {
	return f.current
}

func (f *Fields) Err() error {
	return f.err
}
