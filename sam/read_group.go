package sam

import (
	"errors"
	"fmt"
)

// ReadGroup is one @RG header record. ID is mandatory.
type ReadGroup struct {
	ID string

	Fields map[Tag]string
}

func parseReadGroup(fields []Field) (ReadGroup, error) {

	rg := ReadGroup{Fields: map[Tag]string{}}

	hasID := false

	for _, f := range fields {
		if f.Tag == TagID {
			rg.ID = f.Value
			hasID = true
			continue
		}

		rg.Fields[f.Tag] = f.Value
	}

	if !hasID {
		return rg, fmt.Errorf("missing required tag: %s", TagID)
	}

	return rg, nil
}

func (rg ReadGroup) Get(tag Tag) (string, bool) {
	v, ok := rg.Fields[tag]
	return v, ok
}

// Platform resolves the PL field, when present, to a known sequencing
// platform.
func (rg ReadGroup) Platform() (Platform, error) {
	raw, ok := rg.Fields[TagPlatform]
	if !ok {
		return "", ErrEmptyPlatform
	}
	return ParsePlatform(raw)
}

// Platform is a read group sequencing platform (PL).
type Platform string

const (
	PlatformCapillary  Platform = "CAPILLARY"
	PlatformDnbSeq     Platform = "DNBSEQ"
	PlatformLS454      Platform = "LS454"
	PlatformIllumina   Platform = "ILLUMINA"
	PlatformSolid      Platform = "SOLID"
	PlatformHelicos    Platform = "HELICOS"
	PlatformIonTorrent Platform = "IONTORRENT"
	PlatformOnt        Platform = "ONT"
	PlatformPacBio     Platform = "PACBIO"
)

var (
	ErrEmptyPlatform   = errors.New("empty platform")
	ErrInvalidPlatform = errors.New("invalid platform")
)

// ParsePlatform accepts only the exact uppercase names from the SAM
// specification.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case "":
		return "", ErrEmptyPlatform
	case PlatformCapillary, PlatformDnbSeq, PlatformLS454, PlatformIllumina,
		PlatformSolid, PlatformHelicos, PlatformIonTorrent, PlatformOnt, PlatformPacBio:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
}
