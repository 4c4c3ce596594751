package suffixtree

import (
	"slices"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// Find reports every 0-based offset at which pattern occurs in the indexed
// sequence, in ascending order. Cost is O(len(pattern) + occurrences),
// independent of the sequence length.
//
// An invalid character in pattern fails with dna.ErrInvalidSymbol before
// any traversal. The empty pattern matches nowhere and returns nil, as does
// any pattern longer than the sequence. Absent matches are reported as nil,
// never a partial set.
func (t *Tree) Find(pattern string) ([]int, error) {
	syms, err := dna.EncodeSymbols(pattern)
	if err != nil {
		return nil, err
	}
	if len(syms) == 0 || len(syms) > t.seq.Len() {
		return nil, nil
	}

	text := t.seq.Symbols()

	// Descend edge by edge. depth tracks the path length from the root to
	// the end of cur's incoming edge, counting the full edge even when the
	// pattern runs out partway along it.
	cur := rootRef
	depth := int32(0)
	i := 0
	for i < len(syms) {
		child := t.nodes[cur].children[syms[i]]
		if child == noRef {
			return nil, nil
		}
		start := t.nodes[child].start
		el := t.edgeLen(child)
		for j := int32(0); j < el && i < len(syms); j++ {
			if text[start+j] != syms[i] {
				return nil, nil
			}
			i++
		}
		cur = child
		depth += el
	}

	// Every leaf below cur is an occurrence. A leaf at path depth d holds
	// the suffix of length d (terminator included), which starts at
	// len(text)-d. Explicit stack: pathological sequences build deep trees
	// and recursion depth must not scale with them.
	total := int32(len(text))
	type frame struct {
		id    ref
		depth int32
	}
	var positions []int
	stack := []frame{{cur, depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isLeaf(f.id) {
			positions = append(positions, int(total-f.depth))
			continue
		}
		for _, c := range t.nodes[f.id].children {
			if c != noRef {
				stack = append(stack, frame{c, f.depth + t.edgeLen(c)})
			}
		}
	}
	slices.Sort(positions)
	return positions, nil
}

// Contains reports whether pattern occurs at least once. Same contract as
// Find, without enumerating occurrences.
func (t *Tree) Contains(pattern string) (bool, error) {
	syms, err := dna.EncodeSymbols(pattern)
	if err != nil {
		return false, err
	}
	if len(syms) == 0 || len(syms) > t.seq.Len() {
		return false, nil
	}

	text := t.seq.Symbols()
	cur := rootRef
	i := 0
	for i < len(syms) {
		child := t.nodes[cur].children[syms[i]]
		if child == noRef {
			return false, nil
		}
		start := t.nodes[child].start
		el := t.edgeLen(child)
		for j := int32(0); j < el && i < len(syms); j++ {
			if text[start+j] != syms[i] {
				return false, nil
			}
			i++
		}
		cur = child
	}
	return true, nil
}
