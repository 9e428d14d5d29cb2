package sam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const headerText = "@HD\tVN:1.6\tSO:coordinate\n" +
	"@SQ\tSN:sq0\tLN:8\n" +
	"@SQ\tSN:sq1\tLN:13\tM5:d7eba311421bbc9d3ada44709dd61534\n" +
	"@RG\tID:rg0\tPL:ILLUMINA\tSM:sample0\n" +
	"@PG\tID:pg0\tPN:aligner\tCL:aligner -x 1\n" +
	"@CO\tfree text\twith a tab\n"

func TestParseHeader(t *testing.T) {

	h, err := ParseHeader(headerText)
	require.NoError(t, err)

	require.Equal(t, "1.6", h.Version)
	require.Equal(t, "coordinate", h.SortOrder)

	require.Len(t, h.ReferenceSequences, 2)
	require.Equal(t, "sq0", h.ReferenceSequences[0].Name)
	require.Equal(t, int32(8), h.ReferenceSequences[0].Length)

	md5, ok := h.ReferenceSequences[1].Get(TagMD5)
	require.True(t, ok)
	require.Equal(t, "d7eba311421bbc9d3ada44709dd61534", md5)

	require.Len(t, h.ReadGroups, 1)
	require.Equal(t, "rg0", h.ReadGroups[0].ID)

	pl, err := h.ReadGroups[0].Platform()
	require.NoError(t, err)
	require.Equal(t, PlatformIllumina, pl)

	require.Len(t, h.Programs, 1)
	require.Equal(t, "pg0", h.Programs[0].ID)

	cl, ok := h.Programs[0].Get(TagCommandLine)
	require.True(t, ok)
	require.Equal(t, "aligner -x 1", cl)

	require.Equal(t, []string{"free text\twith a tab"}, h.Comments)
}

func TestParseHeaderMissingVersion(t *testing.T) {

	_, err := ParseHeader("@HD\tSO:coordinate\n")
	require.ErrorContains(t, err, "VN")
}

func TestParseHeaderInvalidRecords(t *testing.T) {

	cases := []struct {
		name string
		line string
	}{
		{"unknown kind", "@XX\tVN:1.6"},
		{"missing SN", "@SQ\tLN:8"},
		{"missing LN", "@SQ\tSN:sq0"},
		{"bad LN", "@SQ\tSN:sq0\tLN:eight"},
		{"missing RG ID", "@RG\tSM:sample0"},
		{"missing PG ID", "@PG\tPN:aligner"},
		{"malformed field", "@HD\tVN1.6"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseHeader(c.line)
			require.Error(t, err)
		})
	}
}

func TestParseRecord(t *testing.T) {

	record, err := ParseRecord("@HD\tVN:1.6\tSO:coordinate")
	require.NoError(t, err)
	require.Equal(t, KindHeader, record.Kind)
	require.Equal(t, []Field{{TagVersion, "1.6"}, {TagSortOrder, "coordinate"}}, record.Fields)

	// values may themselves contain colons
	record, err = ParseRecord("@PG\tID:pg0\tCL:tool --opt a:b")
	require.NoError(t, err)
	require.Equal(t, Field{TagCommandLine, "tool --opt a:b"}, record.Fields[1])
}

func TestReferenceSequenceString(t *testing.T) {

	rs := NewReferenceSequence("sq0", 8)
	require.Equal(t, "@SQ\tSN:sq0\tLN:8", rs.String())
}

func TestParsePlatform(t *testing.T) {

	pl, err := ParsePlatform("PACBIO")
	require.NoError(t, err)
	require.Equal(t, PlatformPacBio, pl)

	_, err = ParsePlatform("")
	require.ErrorIs(t, err, ErrEmptyPlatform)

	_, err = ParsePlatform("pacbio")
	require.ErrorIs(t, err, ErrInvalidPlatform)
}
