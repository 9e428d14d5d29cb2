package sam

import "fmt"

// Program is one @PG header record. ID is mandatory.
type Program struct {
	ID string

	Fields map[Tag]string
}

func parseProgram(fields []Field) (Program, error) {

	p := Program{Fields: map[Tag]string{}}

	hasID := false

	for _, f := range fields {
		if f.Tag == TagID {
			p.ID = f.Value
			hasID = true
			continue
		}

		p.Fields[f.Tag] = f.Value
	}

	if !hasID {
		return p, fmt.Errorf("missing required tag: %s", TagID)
	}

	return p, nil
}

func (p Program) Get(tag Tag) (string, bool) {
	v, ok := p.Fields[tag]
	return v, ok
}
