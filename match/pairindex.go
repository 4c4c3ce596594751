package match

import (
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// pairClasses is the number of adjacent base pairs, 4^2.
const pairClasses = dna.Bases * dna.Bases

// PairIndex is the EPMSPP (exact pattern matching using sequence and
// pattern pairs) index: for each of the 16 adjacent base pairs it records
// every offset at which the pair occurs in the text. A query picks the
// pattern pair that is rarest in the text and verifies only the candidate
// alignments that pair admits. Build once per text, query repeatedly.
type PairIndex struct {
	syms []uint8
	pos  [pairClasses][]int32
}

func pairClass(a, b uint8) int {
	return int(a)<<2 | int(b)
}

// NewPairIndex indexes the adjacent-pair positions of text.
func NewPairIndex(text string) (*PairIndex, error) {
	syms, err := dna.EncodeSymbols(text)
	if err != nil {
		return nil, err
	}
	x := &PairIndex{syms: syms}
	for i := 0; i+1 < len(syms); i++ {
		c := pairClass(syms[i], syms[i+1])
		x.pos[c] = append(x.pos[c], int32(i))
	}
	return x, nil
}

// Find reports every offset of pattern in the indexed text, ascending.
// Patterns shorter than a pair carry no pair information, so a length-1
// pattern falls back to a linear scan.
func (x *PairIndex) Find(pattern string) ([]int, error) {
	p, err := dna.EncodeSymbols(pattern)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 || len(p) > len(x.syms) {
		return nil, nil
	}
	if len(p) == 1 {
		var positions []int
		for i, c := range x.syms {
			if c == p[0] {
				positions = append(positions, i)
			}
		}
		return positions, nil
	}

	// First pattern offset of each pair class present in the pattern.
	var firstAt [pairClasses]int32
	for c := range firstAt {
		firstAt[c] = -1
	}
	for j := 0; j+1 < len(p); j++ {
		c := pairClass(p[j], p[j+1])
		if firstAt[c] == -1 {
			firstAt[c] = int32(j)
		}
	}

	// The rarest-in-text pattern pair yields the fewest candidates. A
	// pattern pair that never occurs in the text proves there is no match.
	best := -1
	for c := range firstAt {
		if firstAt[c] == -1 {
			continue
		}
		if best == -1 || len(x.pos[c]) < len(x.pos[best]) {
			best = c
		}
	}
	if len(x.pos[best]) == 0 {
		return nil, nil
	}

	off := int(firstAt[best])
	var positions []int
	for _, sp := range x.pos[best] {
		i := int(sp) - off
		if i < 0 || i+len(p) > len(x.syms) {
			continue
		}
		match := true
		for j := range p {
			if x.syms[i+j] != p[j] {
				match = false
				break
			}
		}
		if match {
			positions = append(positions, i)
		}
	}
	return positions, nil
}
