package match

import (
	"errors"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

var ErrNoPatterns = errors.New("match: automaton needs at least one non-empty pattern")

// Automaton is an Aho-Corasick automaton over the DNA alphabet: one pass
// over a text reports occurrences of every pattern it was built from.
// Build once, run against any number of texts; a built Automaton is
// read-only.
type Automaton struct {
	patterns []string

	// Dense per-state transition tables. On a four-symbol alphabet the
	// goto function is precomputed into a full DFA during the breadth
	// first pass, so the scan never walks failure chains.
	next [][dna.Bases]int32
	out  [][]int32 // pattern indices ending at each state
}

// NewAutomaton builds the automaton for the given patterns. Empty patterns
// are rejected, as is an empty set; duplicate patterns collapse into one
// entry.
func NewAutomaton(patterns []string) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	a := &Automaton{patterns: patterns}
	a.next = append(a.next, [dna.Bases]int32{-1, -1, -1, -1})
	a.out = append(a.out, nil)

	// Trie phase.
	for pi, pat := range patterns {
		if pat == "" {
			return nil, ErrNoPatterns
		}
		syms, err := dna.EncodeSymbols(pat)
		if err != nil {
			return nil, err
		}
		state := int32(0)
		for _, c := range syms {
			if a.next[state][c] == -1 {
				a.next = append(a.next, [dna.Bases]int32{-1, -1, -1, -1})
				a.out = append(a.out, nil)
				a.next[state][c] = int32(len(a.next) - 1)
			}
			state = a.next[state][c]
		}
		dup := false
		for _, q := range a.out[state] {
			if a.patterns[q] == pat {
				dup = true
				break
			}
		}
		if !dup {
			a.out[state] = append(a.out[state], int32(pi))
		}
	}

	// Breadth-first failure pass, collapsing failures into the transition
	// table as it goes.
	fail := make([]int32, len(a.next))
	var queue []int32
	for c := 0; c < dna.Bases; c++ {
		s := a.next[0][c]
		if s == -1 {
			a.next[0][c] = 0
			continue
		}
		fail[s] = 0
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		a.out[state] = append(a.out[state], a.out[fail[state]]...)
		for c := 0; c < dna.Bases; c++ {
			s := a.next[state][c]
			if s == -1 {
				a.next[state][c] = a.next[fail[state]][c]
				continue
			}
			fail[s] = a.next[fail[state]][c]
			queue = append(queue, s)
		}
	}
	return a, nil
}

// Find scans text once and returns, for each pattern that occurs, its
// ascending occurrence offsets. Patterns with no occurrences have no entry.
func (a *Automaton) Find(text string) (map[string][]int, error) {
	t, err := dna.EncodeSymbols(text)
	if err != nil {
		return nil, err
	}

	found := make(map[string][]int)
	state := int32(0)
	for i, c := range t {
		state = a.next[state][c]
		for _, pi := range a.out[state] {
			pat := a.patterns[pi]
			found[pat] = append(found[pat], i-len(pat)+1)
		}
	}
	return found, nil
}
