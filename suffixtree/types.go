package suffixtree

import (
	"errors"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// childSlots is the node fan-out: one slot per base plus one for the
// terminator symbol that ends every suffix.
const childSlots = dna.Bases + 1

// ref is a node arena index. Ids are stable for the lifetime of the tree
// and nothing is ever freed individually.
type ref int32

const (
	// rootRef is the root's arena index, always 0.
	rootRef ref = 0
	// noRef marks an absent child or an unset suffix link. A suffix link of
	// noRef resolves to the root when followed.
	noRef ref = -1
)

// openEnd is the edge-end sentinel for leaves. An open end resolves against
// the tree-wide leafEnd counter instead of a per-node position, which is
// what lets a phase extend every current leaf in O(1).
const openEnd int32 = -1

var (
	ErrTooManyNodes = errors.New("suffixtree: node limit exceeded")
)

// node is the uniform arena record. Edge offsets are half-open [start, end)
// into the shared sequence buffer; internal ends are fixed once at the split
// that created them, leaf ends are openEnd.
type node struct {
	children [childSlots]ref
	start    int32
	end      int32
	link     ref
}

// NodeCountMax bounds the arena for a sequence of n bases: n+1 leaves, at
// most n internal nodes, plus the root.
func NodeCountMax(n int) int {
	return 2*n + 2
}
