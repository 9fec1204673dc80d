package graphaln

import (
	"math"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// Result is the outcome of aligning a query against a graph: the
// winning node-id path, the padded reference/query strands produced by
// re-aligning that path's flattened reference, and its score.
type Result struct {
	Path        []uint32
	PaddedRef   seqgraph.Sequence
	PaddedQuery seqgraph.Sequence
	Score       int32
}

const negInf = int32(math.MinInt32)

func maxScore(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// newSharedMatrix allocates the single DP matrix reused across every
// segment of a traversal and seeds its edges once, at the graph's
// absolute origin, sized to the longest reference any path through the
// graph could produce.
func newSharedMatrix(graph *SeqGraph, query seqgraph.Sequence, p dpalign.Params) *dpalign.Matrix {
	maxLen := MaxLen(graph.Root)
	m := dpalign.NewMatrix(maxLen, query.Len())
	dpalign.InitEdges(m, 0, maxLen, query.Len(), p)
	return m
}

// finalize re-runs the flat aligner over the winning path's
// concatenated reference to recover the padded strands: the shared
// matrix used during traversal only ever holds the last branch tried
// at each fork, not necessarily the winner's.
func finalize(graph *SeqGraph, path []uint32, query seqgraph.Sequence, score int32, p dpalign.Params) *Result {
	flatRef := NewGraphPath(graph, path).Collect()
	paddedRef, paddedQuery, _ := dpalign.Align(flatRef, query, p)
	return &Result{Path: path, PaddedRef: paddedRef, PaddedQuery: paddedQuery, Score: score}
}

// AlignGlobalMax exhaustively explores every path through graph,
// returning the one whose running maximum score (the best single DP
// cell seen anywhere along it, not just at its end) is highest. Ties
// between branch members are broken in favor of whichever was tried
// first.
func AlignGlobalMax(graph *SeqGraph, query seqgraph.Sequence, p dpalign.Params) (*Result, bool) {
	if graph.Root == nil {
		return nil, false
	}
	m := newSharedMatrix(graph, query, p)
	score, path, ok := globalMaxWalk(graph.Root, 0, m, query, p, nil)
	if !ok {
		return nil, false
	}
	return finalize(graph, path, query, score, p), true
}

// globalMaxWalk fills node's subtree (and everything downstream of it)
// against m, returning the best running score seen along the path it
// picks through any Branches encountered and the full id sequence of
// that path through to the Nil terminal.
func globalMaxWalk(node *Node, start int, m *dpalign.Matrix, query seqgraph.Sequence, p dpalign.Params, pathPrefix []uint32) (int32, []uint32, bool) {
	if node == nil {
		full := make([]uint32, len(pathPrefix))
		copy(full, pathPrefix)
		return 0, full, true
	}

	pathHere := make([]uint32, len(pathPrefix), len(pathPrefix)+1)
	copy(pathHere, pathPrefix)
	pathHere = append(pathHere, node.ID)

	if !node.IsBranch {
		_, _, localBest := dpalign.FillSegment(m, start, node.Val, query, p)
		downstreamScore, downstreamPath, ok := globalMaxWalk(node.Next, start+node.Val.Len(), m, query, p, pathHere)
		if !ok {
			return 0, nil, false
		}
		return maxScore(localBest, downstreamScore), downstreamPath, true
	}

	best := negInf
	var bestPath []uint32
	found := false
	for _, member := range node.Members {
		score, path, ok := globalMaxWalk(member, start, m, query, p, pathHere)
		if ok && (!found || score > best) {
			best, bestPath, found = score, path, true
		}
	}
	return best, bestPath, found
}

// AlignLocalMax greedily descends graph: at every Branch it evaluates
// each member one segment deep against the shared matrix (a Frag
// member gets its FillSegment score; a non-Frag member is scored 0,
// since the contract only defines one-level lookahead) and commits
// irrevocably to whichever scored highest, first-visited winning ties.
func AlignLocalMax(graph *SeqGraph, query seqgraph.Sequence, p dpalign.Params) (*Result, bool) {
	if graph.Root == nil {
		return nil, false
	}
	m := newSharedMatrix(graph, query, p)

	cur := graph.Root
	start := 0
	var path []uint32
	runningMax := int32(0)
	visited := false

	for cur != nil {
		path = append(path, cur.ID)
		if !cur.IsBranch {
			_, _, localBest := dpalign.FillSegment(m, start, cur.Val, query, p)
			runningMax = maxScore(runningMax, localBest)
			visited = true
			start += cur.Val.Len()
			cur = cur.Next
			continue
		}

		var bestMember *Node
		best := negInf
		for _, member := range cur.Members {
			score := oneLevelScore(member, start, m, query, p)
			if bestMember == nil || score > best {
				best, bestMember = score, member
			}
		}
		cur = bestMember
	}

	if !visited {
		return nil, false
	}
	return finalize(graph, path, query, runningMax, p), true
}

// oneLevelScore evaluates a single Branch member one segment deep: a
// Frag fills and scores its own strip, a Nil contributes nothing, and a
// nested Branch (no Frag to score at this depth) is treated as a
// zero-scoring dead end for the purposes of this comparison.
func oneLevelScore(node *Node, start int, m *dpalign.Matrix, query seqgraph.Sequence, p dpalign.Params) int32 {
	if node == nil || node.IsBranch {
		return 0
	}
	_, _, score := dpalign.FillSegment(m, start, node.Val, query, p)
	return score
}
