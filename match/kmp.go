package match

import (
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// KMP reports every offset of pattern in text using the Knuth-Morris-Pratt
// prefix-function matcher: O(n+m), no backtracking over the text.
func KMP(text, pattern string) ([]int, error) {
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

	lps := longestPrefixSuffix(p)

	var positions []int
	j := 0
	for i := 0; i < len(t); {
		if t[i] == p[j] {
			i++
			j++
			if j == len(p) {
				positions = append(positions, i-j)
				j = lps[j-1]
			}
		} else if j > 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return positions, nil
}

// longestPrefixSuffix computes, for each prefix of p, the length of the
// longest proper prefix that is also a suffix of it.
func longestPrefixSuffix(p []uint8) []int {
	lps := make([]int, len(p))
	length := 0
	for i := 1; i < len(p); {
		switch {
		case p[i] == p[length]:
			length++
			lps[i] = length
			i++
		case length > 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}
