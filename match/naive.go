package match

import (
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// Naive reports every offset of pattern in text by direct O(n*m)
// comparison. It is the reference the other matchers are checked against:
// slow, but with no room for cleverness to go wrong.
//
// The empty pattern matches nowhere.
func Naive(text, pattern string) ([]int, error) {
	t, err := dna.EncodeSymbols(text)
	if err != nil {
		return nil, err
	}
	p, err := dna.EncodeSymbols(pattern)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 || len(p) > len(t) {
		return nil, nil
	}

	var positions []int
	for i := 0; i+len(p) <= len(t); i++ {
		j := 0
		for j < len(p) && t[i+j] == p[j] {
			j++
		}
		if j == len(p) {
			positions = append(positions, i)
		}
	}
	return positions, nil
}
