package graphaln

import (
	"fmt"

	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// GraphPath replays a concrete id sequence chosen by one of the
// traversal strategies back into the flat Sequence it denotes. It is a
// cursor: each call to Next yields the value of the next Frag on the
// path, descending into Branch members as the id list directs.
//
// A mismatch between the id list and the graph's actual shape is a
// fatal invariant violation (the id list is only ever produced by this
// package's own traversal code) and panics rather than returning an
// error.
type GraphPath struct {
	node *Node
	ids  []uint32
	step int
}

// NewGraphPath starts a cursor at graph's root, expecting ids to name
// every node visited along the way (Frags and Branches alike).
func NewGraphPath(graph *SeqGraph, ids []uint32) *GraphPath {
	return &GraphPath{node: graph.Root, ids: ids}
}

// Next yields the next Frag's value and advances the cursor. It
// returns (Sequence{}, false) once the path reaches the Nil terminal or
// runs out of ids.
func (p *GraphPath) Next() (seqgraph.Sequence, bool) {
	for {
		if p.node == nil || p.step >= len(p.ids) {
			return seqgraph.Sequence{}, false
		}
		if p.node.ID != p.ids[p.step] {
			panic(fmt.Sprintf("graphaln: path step %d expected node id %d, found %d", p.step, p.ids[p.step], p.node.ID))
		}

		if !p.node.IsBranch {
			val := p.node.Val
			p.node = p.node.Next
			p.step++
			return val, true
		}

		p.step++
		if p.step >= len(p.ids) {
			return seqgraph.Sequence{}, false
		}
		nextID := p.ids[p.step]
		var found *Node
		for _, member := range p.node.Members {
			if member.ID == nextID {
				found = member
				break
			}
		}
		if found == nil {
			panic(fmt.Sprintf("graphaln: no branch member with id %d at step %d", nextID, p.step))
		}
		p.node = found
	}
}

// Collect drains the cursor, concatenating every Frag value it yields
// into a single flat Sequence. This is how both traversal strategies
// turn a winning id path into the reference strand they hand to
// dpalign.Align for the final re-alignment.
func (p *GraphPath) Collect() seqgraph.Sequence {
	var out seqgraph.Sequence
	for {
		seq, ok := p.Next()
		if !ok {
			return out
		}
		out = out.Concat(seq)
	}
}
