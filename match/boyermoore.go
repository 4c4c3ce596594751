package match

import (
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// BoyerMoore reports every offset of pattern in text using both classic
// Boyer-Moore shift rules. The bad-character rule is weak on a four-symbol
// alphabet (most shifts are short because every base occurs in any
// non-trivial pattern), which is exactly why the good-suffix rule is kept.
func BoyerMoore(text, pattern string) ([]int, error) {
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

	last := lastOccurrence(p)
	gs := goodSuffixShift(p)
	m := len(p)

	var positions []int
	for i := 0; i+m <= len(t); {
		j := m - 1
		for j >= 0 && p[j] == t[i+j] {
			j--
		}
		if j < 0 {
			positions = append(positions, i)
			i += gs[0]
			continue
		}
		shift := j - last[t[i+j]]
		if gs[j] > shift {
			shift = gs[j]
		}
		if shift < 1 {
			shift = 1
		}
		i += shift
	}
	return positions, nil
}

// lastOccurrence maps each symbol to its last index in p, -1 if absent.
func lastOccurrence(p []uint8) [dna.Bases]int {
	var last [dna.Bases]int
	for c := range last {
		last[c] = -1
	}
	for i, c := range p {
		last[c] = i
	}
	return last
}

// suffixLengths[i] is the length of the longest substring of p ending at i
// that is also a suffix of p.
func suffixLengths(p []uint8) []int {
	m := len(p)
	suff := make([]int, m)
	suff[m-1] = m
	g := m - 1
	f := m - 1
	for i := m - 2; i >= 0; i-- {
		if i > g && suff[i+m-1-f] < i-g {
			suff[i] = suff[i+m-1-f]
		} else {
			if i < g {
				g = i
			}
			f = i
			for g >= 0 && p[g] == p[g+m-1-f] {
				g--
			}
			suff[i] = f - g
		}
	}
	return suff
}

// goodSuffixShift[j] is how far the pattern may slide when a mismatch
// occurs at index j after the suffix p[j+1:] matched.
func goodSuffixShift(p []uint8) []int {
	m := len(p)
	suff := suffixLengths(p)

	gs := make([]int, m)
	for i := range gs {
		gs[i] = m
	}
	j := 0
	for i := m - 1; i >= 0; i-- {
		if suff[i] == i+1 {
			for ; j < m-1-i; j++ {
				if gs[j] == m {
					gs[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i <= m-2; i++ {
		gs[m-1-suff[i]] = m - 1 - i
	}
	return gs
}
