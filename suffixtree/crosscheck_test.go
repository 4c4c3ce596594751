package suffixtree

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/match"
)

// TestFindAgainstNaive drives randomized sequences and patterns through the
// tree and the brute-force scan and requires identical match sets. Patterns
// are a mix of extracted substrings (guaranteed hits) and random draws
// (mostly misses at longer lengths).
func TestFindAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	for _, n := range []int{1, 2, 13, 100, 500} {
		s := dna.RandomSequence(rng, n)
		tree, err := Build(context.Background(), s)
		require.NoError(t, err)

		var patterns []string
		for _, m := range []int{1, 2, 3, 5, 8, 13} {
			if m <= n {
				i := rng.IntN(n - m + 1)
				patterns = append(patterns, s[i:i+m])
			}
			patterns = append(patterns, dna.RandomPattern(rng, m))
		}

		for _, p := range patterns {
			want, err := match.Naive(s, p)
			require.NoError(t, err)
			got, err := tree.Find(p)
			require.NoError(t, err)
			assert.Equal(t, want, got, "sequence %q pattern %q", s, p)
		}
	}
}

// TestFindIdempotent rebuilds from the same sequence and requires identical
// observable match sets, whatever the internal node ordering did.
func TestFindIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	s := dna.RandomSequence(rng, 200)

	a, err := Build(context.Background(), s)
	require.NoError(t, err)
	b, err := Build(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, a.NumNodes(), b.NumNodes())
	for range 50 {
		p := dna.RandomPattern(rng, 1+rng.IntN(6))
		fromA, err := a.Find(p)
		require.NoError(t, err)
		fromB, err := b.Find(p)
		require.NoError(t, err)
		assert.Equal(t, fromA, fromB, "pattern %q", p)
	}
}
