package vcf

import (
	"fmt"
	"strconv"
)

// MissingField is the VCF placeholder for an absent value.
const MissingField = "."

// QualityScore is a QUAL column value, which may be missing.
type QualityScore struct {
	value   float32
	missing bool
}

func (q QualityScore) IsMissing() bool {
	return q.missing
}

// Float returns the score and whether it is present.
func (q QualityScore) Float() (float32, bool) {
	return q.value, !q.missing
}

func (q QualityScore) String() string {
	if q.missing {
		return MissingField
	}
	return strconv.FormatFloat(float64(q.value), 'g', -1, 32)
}

func ParseQualityScore(s string) (QualityScore, error) {

	switch s {
	case "":
		return QualityScore{}, fmt.Errorf("invalid quality score: %q", s)
	case MissingField:
		return QualityScore{missing: true}, nil
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return QualityScore{}, fmt.Errorf("invalid quality score: %q", s)
	}

	return QualityScore{value: float32(v)}, nil
}
