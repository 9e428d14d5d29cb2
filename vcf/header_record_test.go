package vcf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecordPlain(t *testing.T) {

	key, value, err := ParseRecord("##fileformat=VCFv4.4")
	require.NoError(t, err)
	require.Equal(t, "fileformat", key)
	require.False(t, value.IsStruct())
	require.Equal(t, "VCFv4.4", value.Raw)

	key, value, err = ParseRecord("##fileDate=20260831")
	require.NoError(t, err)
	require.Equal(t, "fileDate", key)
	require.Equal(t, "20260831", value.Raw)

	// '=' may appear inside the value
	_, value, err = ParseRecord("##reference=file:///ref.fa?x=1")
	require.NoError(t, err)
	require.Equal(t, "file:///ref.fa?x=1", value.Raw)
}

func TestParseRecordStruct(t *testing.T) {

	key, value, err := ParseRecord(`##INFO=<ID=NS,Number=1,Type=Integer,Description="Number of samples with data">`)
	require.NoError(t, err)
	require.Equal(t, "INFO", key)
	require.True(t, value.IsStruct())

	require.Equal(t, []StructField{
		{"ID", "NS"},
		{"Number", "1"},
		{"Type", "Integer"},
		{"Description", "Number of samples with data"},
	}, value.Fields)

	id, ok := value.Get("ID")
	require.True(t, ok)
	require.Equal(t, "NS", id)

	_, ok = value.Get("Source")
	require.False(t, ok)
}

func TestParseRecordQuotedEscapes(t *testing.T) {

	_, value, err := ParseRecord(`##FILTER=<ID=q10,Description="Quality < 10, a \"soft\" cutoff, backslash: \\">`)
	require.NoError(t, err)
	require.True(t, value.IsStruct())

	desc, ok := value.Get("Description")
	require.True(t, ok)
	require.Equal(t, `Quality < 10, a "soft" cutoff, backslash: \`, desc)
}

func TestParseRecordMalformedStructFallsBack(t *testing.T) {

	// a value that merely starts with '<' is kept verbatim when it does
	// not parse as a structure
	_, value, err := ParseRecord("##pedigreeDB=<url")
	require.NoError(t, err)
	require.False(t, value.IsStruct())
	require.Equal(t, "<url", value.Raw)
}

func TestParseRecordErrors(t *testing.T) {

	_, _, err := ParseRecord("fileformat=VCFv4.4")
	require.ErrorIs(t, err, ErrInvalidHeaderRecord)

	_, _, err = ParseRecord("##fileformat")
	require.ErrorIs(t, err, ErrInvalidHeaderRecord)

	_, _, err = ParseRecord("")
	require.ErrorIs(t, err, ErrInvalidHeaderRecord)
}

func TestParseQualityScore(t *testing.T) {

	q, err := ParseQualityScore("5.8")
	require.NoError(t, err)
	require.False(t, q.IsMissing())

	v, ok := q.Float()
	require.True(t, ok)
	require.Equal(t, float32(5.8), v)
	require.Equal(t, "5.8", q.String())

	q, err = ParseQualityScore(".")
	require.NoError(t, err)
	require.True(t, q.IsMissing())
	require.Equal(t, ".", q.String())

	_, ok = q.Float()
	require.False(t, ok)

	for _, bad := range []string{"", "abc", "5..8"} {
		_, err = ParseQualityScore(bad)
		require.Error(t, err, "input %q", bad)
	}
}
