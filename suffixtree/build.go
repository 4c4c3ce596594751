package suffixtree

import (
	"context"

	"github.com/mjsushanth/Pattern-Matching-With-EPMSPP-Ukkonen-Algorithms/dna"
)

// Build constructs the suffix tree for sequence, a string over {A,C,G,T}.
// Case sensitive; any other character fails with dna.ErrInvalidSymbol at
// its index and no tree is returned. The empty sequence is valid and builds
// a tree holding only the terminator suffix.
//
// ctx is checked between phases, so construction of a large sequence can be
// cancelled or deadlined externally; the algorithm itself never blocks.
// Total work is amortized O(n), and the arena never exceeds
// NodeCountMax(len(sequence)) entries unless capped lower by WithMaxNodes.
func Build(ctx context.Context, sequence string, opts ...Option) (*Tree, error) {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	seq, err := dna.NewSequence(sequence)
	if err != nil {
		return nil, err
	}

	b := builder{
		t: &Tree{
			seq:     seq,
			leafEnd: -1,
		},
		syms:     seq.Symbols(),
		maxNodes: o.maxNodes,
		pending:  noRef,
	}

	arenaCap := NodeCountMax(seq.Len())
	if o.maxNodes > 0 && o.maxNodes < arenaCap {
		arenaCap = o.maxNodes
	}
	b.t.nodes = make([]node, 0, arenaCap)
	b.t.newNode(0, 0) // root: zero-length edge, id 0

	for p := range b.syms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.extend(int32(p)); err != nil {
			return nil, err
		}
	}
	return b.t, nil
}

// builder is the construction-only state threaded across phases. The active
// point addresses where the next suffix insertion resumes: activeNode's
// subtree, along the edge selected by syms[activeEdge], activeLen symbols
// in.
type builder struct {
	t    *Tree
	syms []uint8

	activeNode ref
	activeEdge int32
	activeLen  int32

	// remaining counts suffixes owed to the tree: incremented once per
	// phase, decremented once per explicit insertion. It stays positive
	// across phases whenever the show-stopper rule cut a phase short.
	remaining int32

	// pending is the internal node created by the previous split in this
	// phase, awaiting its suffix link.
	pending ref

	maxNodes int
}

func (b *builder) newNode(start, end int32) (ref, error) {
	if b.maxNodes > 0 && len(b.t.nodes) >= b.maxNodes {
		return noRef, ErrTooManyNodes
	}
	return b.t.newNode(start, end), nil
}

// extend runs one phase: conceptually it appends syms[pos] to every suffix
// inserted so far and inserts the one-symbol suffix, but all open leaves
// extend for free via leafEnd and the loop below only performs the
// insertions that create structure.
func (b *builder) extend(pos int32) error {
	nodes := b.t.nodes

	b.t.leafEnd = pos
	b.remaining++
	b.pending = noRef

	for b.remaining > 0 {
		if b.activeLen == 0 {
			b.activeEdge = pos
		}
		edgeSym := b.syms[b.activeEdge]
		next := nodes[b.activeNode].children[edgeSym]

		if next == noRef {
			// No edge for this symbol: the suffix ends here. A new open
			// leaf completes it, now and for every future phase.
			leaf, err := b.newNode(pos, openEnd)
			if err != nil {
				return err
			}
			nodes = b.t.nodes
			nodes[b.activeNode].children[edgeSym] = leaf
			if b.pending != noRef {
				nodes[b.pending].link = b.activeNode
				b.pending = noRef
			}
		} else {
			// Walk down: skip the whole edge when the active length
			// covers it. No insertion happens on a skipped edge, so no
			// decrement either.
			if el := b.t.edgeLen(next); b.activeLen >= el {
				b.activeEdge += el
				b.activeLen -= el
				b.activeNode = next
				continue
			}

			// Show stopper: the suffix is already on this edge, and so
			// are all shorter ones. End the phase.
			if b.syms[nodes[next].start+b.activeLen] == b.syms[pos] {
				b.activeLen++
				if b.pending != noRef {
					nodes[b.pending].link = b.activeNode
				}
				break
			}

			// Mismatch mid-edge: split at the active length, hang a new
			// leaf for syms[pos] off the split node, and reattach the
			// original subtree below it. The split node's end is fixed
			// here and never changes again.
			nextStart := nodes[next].start
			split, err := b.newNode(nextStart, nextStart+b.activeLen)
			if err != nil {
				return err
			}
			leaf, err := b.newNode(pos, openEnd)
			if err != nil {
				return err
			}
			nodes = b.t.nodes
			nodes[b.activeNode].children[edgeSym] = split
			nodes[split].children[b.syms[pos]] = leaf
			nodes[next].start += b.activeLen
			nodes[split].children[b.syms[nodes[next].start]] = next

			if b.pending != noRef {
				nodes[b.pending].link = split
			}
			b.pending = split
		}

		// One suffix inserted. Relocate the active point to the next
		// shorter suffix: shrink at the root, or follow the suffix link
		// anywhere else.
		b.remaining--
		if b.activeNode == rootRef && b.activeLen > 0 {
			b.activeLen--
			b.activeEdge = pos - b.remaining + 1
		} else if b.activeNode != rootRef {
			if link := nodes[b.activeNode].link; link != noRef {
				b.activeNode = link
			} else {
				b.activeNode = rootRef
			}
		}
	}
	return nil
}
