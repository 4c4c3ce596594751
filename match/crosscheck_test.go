package match

import (
	"math/rand/v2"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// TestMatchersAgreeRandomized cross-checks every matcher against the naive
// scan on randomized inputs. Patterns mix extracted substrings with random
// draws so both the hit and miss paths get traffic.
func TestMatchersAgreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 23))

	for _, n := range []int{1, 5, 50, 400} {
		text := dna.RandomSequence(rng, n)
		idx, err := NewPairIndex(text)
		assert.NilError(t, err)

		var patterns []string
		for _, m := range []int{1, 2, 4, 7, 11} {
			if m <= n {
				i := rng.IntN(n - m + 1)
				patterns = append(patterns, text[i:i+m])
			}
			patterns = append(patterns, dna.RandomPattern(rng, m))
		}

		for _, p := range patterns {
			want, err := Naive(text, p)
			assert.NilError(t, err)

			got, err := KMP(text, p)
			assert.NilError(t, err)
			assert.DeepEqual(t, want, got)

			got, err = BoyerMoore(text, p)
			assert.NilError(t, err)
			assert.DeepEqual(t, want, got)

			got, err = idx.Find(p)
			assert.NilError(t, err)
			assert.DeepEqual(t, want, got)
		}
	}
}

func TestAutomatonAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 13))
	text := dna.RandomSequence(rng, 300)

	patterns := []string{
		text[10:14],
		text[100:103],
		dna.RandomPattern(rng, 5),
		dna.RandomPattern(rng, 2),
		"A",
	}

	a, err := NewAutomaton(patterns)
	assert.NilError(t, err)
	found, err := a.Find(text)
	assert.NilError(t, err)

	for _, p := range patterns {
		want, err := Naive(text, p)
		assert.NilError(t, err)
		if want == nil {
			_, ok := found[p]
			assert.Assert(t, !ok, "pattern %q should have no entry", p)
			continue
		}
		assert.DeepEqual(t, want, found[p])
	}
}
