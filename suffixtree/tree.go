package suffixtree

import (
	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// Tree is a finished suffix tree over one encoded sequence. It is built
// once by Build and read-only afterwards: any number of goroutines may call
// Find concurrently on a fully built Tree without locking.
type Tree struct {
	seq   dna.Sequence
	nodes []node

	// leafEnd is the tree-wide open-end counter. During construction it
	// tracks the current phase; on a finished tree it is fixed at the
	// terminator position, so open edges resolve to the buffer end.
	leafEnd int32
}

// newNode appends an arena record and returns its id. children start empty
// and the suffix link unset (resolving to root).
func (t *Tree) newNode(start, end int32) ref {
	id := ref(len(t.nodes))
	t.nodes = append(t.nodes, node{
		children: [childSlots]ref{noRef, noRef, noRef, noRef, noRef},
		start:    start,
		end:      end,
		link:     noRef,
	})
	return id
}

// edgeEnd resolves n's end offset, exclusive. Open ends read the tree-wide
// counter.
func (t *Tree) edgeEnd(id ref) int32 {
	if t.nodes[id].end == openEnd {
		return t.leafEnd + 1
	}
	return t.nodes[id].end
}

// edgeLen is the label length of the edge leading into id. Every non-root
// node's edge length is at least 1.
func (t *Tree) edgeLen(id ref) int32 {
	return t.edgeEnd(id) - t.nodes[id].start
}

func (t *Tree) isLeaf(id ref) bool {
	return t.nodes[id].end == openEnd
}

// Len returns the number of bases indexed, excluding the terminator.
func (t *Tree) Len() int {
	return t.seq.Len()
}

// NumNodes returns the arena size, root included.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// LeafCount returns the number of leaves. A correctly built tree has
// exactly Len()+1: one leaf per suffix, terminator suffix included.
func (t *Tree) LeafCount() int {
	leaves := 0
	for id := 1; id < len(t.nodes); id++ {
		if t.isLeaf(ref(id)) {
			leaves++
		}
	}
	return leaves
}
