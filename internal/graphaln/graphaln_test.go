package graphaln

import (
	"testing"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, s string) seqgraph.Sequence {
	t.Helper()
	seq, err := seqgraph.New(s)
	require.NoError(t, err)
	return seq
}

func stripGaps(t *testing.T, s seqgraph.Sequence) string {
	t.Helper()
	var out []seqgraph.Base
	for _, b := range s.Bases() {
		if b != seqgraph.HYPHEN {
			out = append(out, b)
		}
	}
	return seqgraph.FromBases(out).String()
}

// buildBranchingGraph reproduces the worked example:
//
//	branch(
//	  chain("ATCG", branch(chain("TTGG"), chain("AAAA"))),
//	  chain("ATGC", "TTTT"),
//	)
func buildBranchingGraph(t *testing.T) (*SeqGraph, *Node, *Node) {
	t.Helper()
	b := NewBuilder()

	innerTTGG := b.Frag(mustSeq(t, "TTGG"), nil)
	innerAAAA := b.Frag(mustSeq(t, "AAAA"), nil)
	innerBranch := b.Branch(innerTTGG, innerAAAA)
	member1 := b.Frag(mustSeq(t, "ATCG"), innerBranch)

	tttt := b.Frag(mustSeq(t, "TTTT"), nil)
	member2 := b.Frag(mustSeq(t, "ATGC"), tttt)

	root := b.Branch(member1, member2)
	return b.Graph(root), member1, member2
}

func TestMaxLen(t *testing.T) {
	g, _, _ := buildBranchingGraph(t)
	assert.Equal(t, 8, MaxLen(g.Root))
}

func TestGraphPathCollect(t *testing.T) {
	g, member1, member2 := buildBranchingGraph(t)

	path := []uint32{g.Root.ID, member1.ID, member1.Next.ID, member1.Next.Members[1].ID}
	flat := NewGraphPath(g, path).Collect()
	assert.Equal(t, "ATCGAAAA", flat.String())

	path2 := []uint32{g.Root.ID, member2.ID, member2.Next.ID}
	flat2 := NewGraphPath(g, path2).Collect()
	assert.Equal(t, "ATGCTTTT", flat2.String())
}

func TestGraphPathMismatchPanics(t *testing.T) {
	g, _, _ := buildBranchingGraph(t)
	assert.Panics(t, func() {
		NewGraphPath(g, []uint32{999}).Collect()
	})
}

// TestAlignGlobalMaxPicksBranchingDetour mirrors the branching worked
// example: the query's trailing "AAAA" makes the inner-branch detour
// through member1 score higher overall than the flat member2 chain,
// even though member2 alone has no gaps against the query.
func TestAlignGlobalMaxPicksBranchingDetour(t *testing.T) {
	g, member1, _ := buildBranchingGraph(t)
	query := mustSeq(t, "ATGCAAAA")

	result, ok := AlignGlobalMax(g, query, dpalign.DefaultParams())
	require.True(t, ok)

	assert.Equal(t, "ATCGAAAA", stripGaps(t, result.PaddedRef))
	assert.Equal(t, "ATGCAAAA", stripGaps(t, result.PaddedQuery))
	assert.Equal(t, result.PaddedRef.Len(), result.PaddedQuery.Len())
	assert.Contains(t, result.Path, member1.ID)
}

// TestAlignLocalMaxPicksFlatChain mirrors the same worked example: the
// greedy one-level lookahead at the root branch prefers member2
// ("ATGC" matches the query's own prefix exactly) over member1
// ("ATCG"), and never discovers the inner branch's better detour.
func TestAlignLocalMaxPicksFlatChain(t *testing.T) {
	g, _, member2 := buildBranchingGraph(t)
	query := mustSeq(t, "ATGCAAAA")

	result, ok := AlignLocalMax(g, query, dpalign.DefaultParams())
	require.True(t, ok)

	assert.Equal(t, "ATGCTTTT", result.PaddedRef.String())
	assert.Equal(t, "ATGCAAAA", result.PaddedQuery.String())
	// member1's one-level FillSegment ("ATCG" vs the query) bests out at 2,
	// member2's ("ATGC") at 4, so member2 wins and is re-filled for real
	// (runningMax=4). The "TTTT" continuation only reaches a local best of
	// 3 against the remaining query, so runningMax stays 4.
	assert.EqualValues(t, 4, result.Score)
	assert.Equal(t, []uint32{g.Root.ID, member2.ID, member2.Next.ID}, result.Path)
}

func TestAlignGlobalMaxEmptyGraph(t *testing.T) {
	g := &SeqGraph{}
	_, ok := AlignGlobalMax(g, mustSeq(t, "ATGC"), dpalign.DefaultParams())
	assert.False(t, ok)
}

func TestAlignLocalMaxEmptyGraph(t *testing.T) {
	g := &SeqGraph{}
	_, ok := AlignLocalMax(g, mustSeq(t, "ATGC"), dpalign.DefaultParams())
	assert.False(t, ok)
}

func TestAlignGlobalMaxFlatGraphMatchesDPAligner(t *testing.T) {
	b := NewBuilder()
	root := b.Frag(mustSeq(t, "AAAAATGCTCGAAAAAAAA"), nil)
	g := b.Graph(root)
	query := mustSeq(t, "TGCTCG")

	result, ok := AlignGlobalMax(g, query, dpalign.DefaultParams())
	require.True(t, ok)

	wantRef, wantQuery, wantScore := dpalign.Align(mustSeq(t, "AAAAATGCTCGAAAAAAAA"), query, dpalign.DefaultParams())
	assert.Equal(t, wantRef.String(), result.PaddedRef.String())
	assert.Equal(t, wantQuery.String(), result.PaddedQuery.String())
	assert.Equal(t, wantScore, result.Score)
}
