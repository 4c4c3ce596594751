package suffixtree

/*

# Suffix tree construction over DNA sequences

This package builds a suffix tree for a single DNA sequence in linear time
using Ukkonen's online algorithm, and answers exact substring queries against
the finished tree in time proportional to the pattern length plus the number
of occurrences - independent of the sequence length once the tree is built.

It follows the same "functional primitives over flat storage" style as the
rest of this project's influences:

  - all nodes live in one arena slice and are addressed by stable int32 ids
  - edge labels are (start, end) offsets into the shared encoded sequence
    buffer, never copied substrings
  - suffix links are stored as ids, with "unset" resolving to the root

The arena representation matters here because the node graph is cyclic and
pointer heavy: suffix links point "backwards and upwards" across the tree,
and every open leaf shares a single mutable end position. Flattening all of
that into indices removes any lifetime or ownership question - the Tree owns
one slice, and nothing is ever freed individually.

## The three tricks that make construction linear

Conceptually, phase p inserts every suffix of sequence[0..p] into the tree.
Done literally that is quadratic. Three observations fix it:

 1. Open ends. A leaf, once created, stays a leaf, and its edge always
    extends to the current end of the processed prefix. So leaf edges store
    the sentinel "open" end and read a single tree-wide counter. Advancing
    that counter at the start of a phase extends every current leaf in O(1).

 2. Show stopper. If the suffix to insert is already present (the next
    symbol continues an existing edge), every shorter suffix of it is also
    already present, so the phase ends immediately. The insertions skipped
    this way are exactly the ones the open-end rule will complete later.

 3. Walk down (skip/count). When relocating after an insertion, edges are
    skipped whole by comparing the active length against the edge length
    rather than rescanning symbols one at a time.

The cursor that threads all of this between phases is the active point:
(active node, active edge offset, active length). After each insertion the
active point either shrinks at the root or follows the active node's suffix
link, which is what lets the builder resume at the next shorter suffix
without rescanning. Newly split internal nodes receive their suffix links
one step late: a split node is held pending for one iteration and linked to
wherever the active point lands next.

The classic references are Ukkonen's paper and the usual expositions:

  - E. Ukkonen, "On-line construction of suffix trees", Algorithmica 14 (1995)
  - https://stackoverflow.com/questions/9452701/ukkonens-suffix-tree-algorithm-in-plain-english

## The terminator

Every sequence gets a terminator symbol appended (dna.Terminator, outside
the base alphabet). Without it, a suffix that is a prefix of another suffix
("A" in "ACA") would end in the middle of an edge and have no leaf. With it,
every one of the n+1 suffixes ends at a distinct leaf, which is also the
invariant the tests lean on: a finished tree has exactly n+1 leaves.

Because the terminator is a real symbol with real edges, nodes carry five
child slots: one per base plus one for the terminator. No pattern can ever
encode the terminator, so those edges are unreachable from a query.

## Querying

Find descends from the root edge by edge, comparing pattern symbols against
the shared sequence buffer. If the pattern is exhausted - at a node boundary
or partway along an edge - every leaf below that point is an occurrence.
Leaves are enumerated with an explicit stack (deep trees must not recurse),
accumulating the root-to-leaf path length; a leaf at depth d is the suffix
starting at (n+1)-d. Deriving positions from the path depth, rather than
from stored leaf offsets, keeps the answer independent of how edge ends are
represented internally.

*/
