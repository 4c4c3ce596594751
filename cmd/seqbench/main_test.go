package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadOrGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genome.txt")
	require.NoError(t, os.WriteFile(path, []byte(">rec\nACGT\nGGCC\n"), 0o644))

	got, err := loadOrGenerate(path, 0, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "ACGTGGCC", got)
}

func TestLoadOrGenerateGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genome.txt.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("ACGTACGT\nTTTT\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	got, err := loadOrGenerate(path, 0, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTTTTT", got)
}

func TestLoadOrGenerateRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	got, err := loadOrGenerate("", 64, rng, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, got, 64)
}

func TestPatternSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))

	patterns := patternSet("ACGTACGTACGT", "", 3, 4, rng)
	require.Len(t, patterns, 4)
	// the first pattern is extracted from the sequence, so it must hit
	assert.Contains(t, "ACGTACGTACGT", patterns[0])

	patterns = patternSet("ACGT", "GTA", 3, 4, rng)
	assert.Equal(t, []string{"GTA"}, patterns)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "AC[GT]AC", excerpt("ACGTAC", 2, 2, 5))
	assert.Equal(t, "...GT[AC]", excerpt("ACGTAC", 4, 2, 2))
	assert.Equal(t, "[ACGTAC]", excerpt("ACGTAC", 0, 6, 0))
}
