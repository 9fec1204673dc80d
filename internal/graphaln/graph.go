// Package graphaln implements the branching-reference side of the
// aligner: the SeqGraph/Node DAG, the GraphPath iterator that replays a
// chosen id sequence back into a flat Sequence, and the two graph
// traversal strategies (exhaustive global max, greedy local max) that
// invoke the dpalign kernel per segment.
//
// Comparison with Aria:
//
//	Aria would hold shared sub-trees behind reference-counted handles
//	with a compile-time-checked acyclicity invariant. Go pointers are
//	already shared references managed by the garbage collector, so a
//	Node's Next/Members fields are ordinary *Node values — multiple
//	Branch members point at the same tail Node without any special
//	ownership machinery.
package graphaln

import "github.com/aria-lang/graphaligner-go/internal/seqgraph"

// Node is one element of the reference DAG. A nil *Node stands for the
// Nil terminal described in the data model; every other Node is either
// a Frag (IsBranch == false, carrying Val and Next) or a Branch
// (IsBranch == true, carrying Members). The two halves of the struct
// are never both populated for the same node.
type Node struct {
	ID       uint32
	IsBranch bool

	// Frag fields.
	Val  seqgraph.Sequence
	Next *Node

	// Branch fields.
	Members []*Node
}

// SeqGraph is a rooted, immutable DAG of Nodes plus an id->name table
// for nodes that were given a human-readable "id" key in the source
// JSON. A nil Root is the empty graph (no Frag exists anywhere in it).
type SeqGraph struct {
	Root  *Node
	Names map[uint32]string
}

// Builder assigns the monotonically increasing node ids described in
// §6: ids are never present in the graph's wire format, they are
// handed out in construction order. A Builder is not safe for
// concurrent use; each graph is built single-threaded, then shared
// freely for reading (see §5).
type Builder struct {
	nextID uint32
	names  map[uint32]string
}

// NewBuilder starts a fresh id counter at zero.
func NewBuilder() *Builder {
	return &Builder{names: make(map[uint32]string)}
}

// Frag allocates a new Frag node wrapping val, followed by next (nil
// for a terminal fragment).
func (b *Builder) Frag(val seqgraph.Sequence, next *Node) *Node {
	n := &Node{ID: b.nextID, Val: val, Next: next}
	b.nextID++
	return n
}

// Branch allocates a new Branch node over the given alternatives.
func (b *Builder) Branch(members ...*Node) *Node {
	n := &Node{ID: b.nextID, IsBranch: true, Members: members}
	b.nextID++
	return n
}

// Name attaches a human-readable name to the most recently allocated
// node id (or any id, if the caller already knows it).
func (b *Builder) Name(id uint32, name string) {
	b.names[id] = name
}

// Graph finalizes the builder into a SeqGraph rooted at root.
func (b *Builder) Graph(root *Node) *SeqGraph {
	return &SeqGraph{Root: root, Names: b.names}
}

// MaxLen returns the maximum possible reference length producible by
// any path through the graph rooted at node: |v| + MaxLen(next) for a
// Frag, max(MaxLen(m) for m in members) for a Branch, 0 for Nil. It is
// used only to size the shared DP matrix before traversal begins.
func MaxLen(node *Node) int {
	if node == nil {
		return 0
	}
	if !node.IsBranch {
		return node.Val.Len() + MaxLen(node.Next)
	}
	best := 0
	for _, m := range node.Members {
		if v := MaxLen(m); v > best {
			best = v
		}
	}
	return best
}
