package dna

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSequencesPlainLines(t *testing.T) {
	in := "ACGT\n\n  GGCC  \nTTTT\n"
	got, err := ReadSequences(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "GGCC", "TTTT"}, got)
}

func TestReadSequencesFasta(t *testing.T) {
	in := strings.Join([]string{
		">chr1 test record",
		"ACGT",
		"GGCC",
		">chr2",
		"TTTT",
		"",
	}, "\n")
	got, err := ReadSequences(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGTGGCC", "TTTT"}, got)
}

func TestReadSequencesEmpty(t *testing.T) {
	got, err := ReadSequences(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
