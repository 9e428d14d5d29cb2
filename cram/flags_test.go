package cram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {

	require.True(t, Flags(0).IsEmpty())
	require.False(t, FlagDetached.IsEmpty())

	f := FlagDetached | FlagHasMateDownstream

	require.True(t, f.IsDetached())
	require.True(t, f.HasMateDownstream())
	require.False(t, f.AreQualityScoresStoredAsArray())
	require.False(t, f.DecodeSequenceAsUnknown())

	all := FlagQualityScoresStoredAsArray | FlagDetached | FlagHasMateDownstream | FlagDecodeSequenceAsUnknown

	require.True(t, all.AreQualityScoresStoredAsArray())
	require.True(t, all.DecodeSequenceAsUnknown())
}
