package dna

import "math/rand/v2"

// RandomSequence returns a uniformly random base string of length n. It is
// intended for benchmarking and randomized cross-check testing; pass a
// seeded rng for reproducible runs.
func RandomSequence(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = baseFor[rng.IntN(Bases)]
	}
	return string(b)
}

// RandomPattern is RandomSequence under a name that matches its use: query
// patterns are drawn the same way as sequences, just shorter.
func RandomPattern(rng *rand.Rand, n int) string {
	return RandomSequence(rng, n)
}
