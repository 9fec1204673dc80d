package dpalign

import (
	"github.com/aria-lang/graphaligner-go/internal/cell"
	"github.com/aria-lang/graphaligner-go/internal/matrix"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// Matrix is the packed-cell DP table shared across the whole engine:
// the flat aligner allocates one per call, the graph aligner allocates
// one per alignment and reuses it across every segment.
type Matrix = matrix.Matrix[cell.Cell]

func scoreOf(c cell.Cell) int64 {
	return int64(cell.Score(c))
}

// NewMatrix allocates a (width x height) matrix initialized to
// pack(Nil, 0), sized to hold a reference of refCap bases against a
// query of queryLen bases: width = refCap+2, height = queryLen+2.
func NewMatrix(refCap, queryLen int) *Matrix {
	return matrix.New(cell.Pack(cell.Nil, 0), refCap+2, queryLen+2)
}

// unpack is a thin wrapper that turns the BadCellError invariant
// violation into a panic: every cell ever read here was itself written
// by Pack in this same loop, so a decode failure means the matrix was
// corrupted by something outside this package's control.
func unpack(c cell.Cell) (cell.State, int32) {
	st, sc, err := cell.Unpack(c)
	if err != nil {
		panic(err)
	}
	return st, sc
}

// InitEdges seeds the top row and (when params.LLocal is false) the
// left column of the matrix at column offset `start`, for a segment
// whose reference runs refLen bases and whose query runs queryLen
// bases. Both the flat Align entry point and the graph aligner call it
// once with start=0; the graph aligner passes the longest path length
// as refLen, so later Frag segments are not re-seeded.
func InitEdges(m *Matrix, start int, refLen, queryLen int, p Params) {
	if !p.LLocal {
		for i := 0; i <= refLen; i++ {
			m.Set(start+i, 0, cell.Pack(cell.Nil, int32(-i)))
		}
	}
	for j := 0; j <= queryLen; j++ {
		m.Set(start, j, cell.Pack(cell.Nil, int32(-j)))
	}
}

// FillSegment runs the affine-gap recurrence over the strip
// [start, start+ref.Len()] x [0, query.Len()] of m, against the whole
// query. It returns the absolute matrix coordinates of the
// highest-scoring cell filled during this call (ties broken by later
// scan order: the last cell written with an equal score wins) along
// with that score.
func FillSegment(m *Matrix, start int, ref, query seqgraph.Sequence, p Params) (bestI, bestJ int, bestScore int32) {
	refLen, queryLen := ref.Len(), query.Len()

	haveBest := false
	for i := 1; i <= refLen; i++ {
		ip := start + i
		for j := 1; j <= queryLen; j++ {
			ds, d := unpack(m.At(ip-1, j))
			delPenalty := p.GapOpen
			if p.RLocal && i == refLen {
				delPenalty = 0
			} else if ds == cell.Del {
				delPenalty = p.GapExt
			}
			delScore := d + delPenalty

			is, v := unpack(m.At(ip, j-1))
			insPenalty := p.GapOpen
			if is == cell.Ins {
				insPenalty = p.GapExt
			}
			insScore := v + insPenalty

			_, diag := unpack(m.At(ip-1, j-1))
			match := ref.At(i-1) == query.At(j-1)
			matchScore := p.Mismatch
			if match {
				matchScore = p.Equal
			}
			diagScore := diag + matchScore

			var state cell.State
			var score int32
			switch {
			case diagScore >= delScore && diagScore >= insScore:
				if match {
					state = cell.Match
				} else {
					state = cell.Mismatch
				}
				score = diagScore
			case delScore > diagScore && delScore >= insScore:
				state = cell.Del
				score = delScore
			default:
				state = cell.Ins
				score = insScore
			}

			m.Set(ip, j, cell.Pack(state, score))

			if !haveBest || int64(score) >= int64(bestScore) {
				haveBest = true
				bestScore = score
				bestI, bestJ = ip, j
			}
		}
	}
	return bestI, bestJ, bestScore
}

// Align runs the full flat alignment of query against ref: it
// allocates a fresh matrix, fills it, and traces back from the
// best-scoring cell to produce the padded (reference, query) pair.
func Align(ref, query seqgraph.Sequence, p Params) (paddedRef, paddedQuery seqgraph.Sequence, score int32) {
	m := NewMatrix(ref.Len(), query.Len())
	InitEdges(m, 0, ref.Len(), query.Len(), p)
	bestI, bestJ, best := FillSegment(m, 0, ref, query, p)
	paddedRef, paddedQuery = Traceback(m, ref, query, bestI, bestJ)
	return paddedRef, paddedQuery, best
}

// Traceback reconstructs the padded alignment from a chosen cell
// (si, sj) in a flat matrix m (start=0: m's x-axis indexes ref 1:1).
// It walks backward toward the origin and forward past the maximum,
// then stitches the reversed backward walk, the start cell itself, and
// the forward walk together.
func Traceback(m *Matrix, ref, query seqgraph.Sequence, si, sj int) (paddedRef, paddedQuery seqgraph.Sequence) {
	fwdRef, fwdQuery := walk(m, ref, query, si, sj, 1)
	revRef, revQuery := walk(m, ref, query, si, sj, -1)

	revRef = revRef.Reverse()
	if si <= ref.Len() && si >= 1 {
		revRef = revRef.Push(ref.At(si - 1))
	}

	revQuery = revQuery.Reverse()
	if sj <= query.Len() && sj >= 1 {
		revQuery = revQuery.Push(query.At(sj - 1))
	}

	return revRef.Concat(fwdRef), revQuery.Concat(fwdQuery)
}

// walk performs one directional traceback pass (inc = +1 or -1) from
// (si, sj), emitting bases onto two growing strands by always moving
// toward whichever of the diagonal/row/column neighbor holds the
// largest score, then padding any remaining reference or query bases
// with HYPHEN once one strand is exhausted.
func walk(m *Matrix, ref, query seqgraph.Sequence, si, sj, inc int) (seqgraph.Sequence, seqgraph.Sequence) {
	refLen, queryLen := ref.Len(), query.Len()

	maxI, maxJ := refLen, queryLen
	if inc < 0 {
		maxI, maxJ = refLen+1, queryLen+1
	}

	var paddedRef, paddedQuery seqgraph.Sequence
	i, j := si, sj

	for i < maxI && i > 1 && j < maxJ && j > 1 {
		_, diagScore := unpack(m.At(i+inc, j+inc))
		_, rowScore := unpack(m.At(i+inc, j))
		_, colScore := unpack(m.At(i, j+inc))

		switch {
		case diagScore >= rowScore && diagScore >= colScore:
			i += inc
			j += inc
			paddedRef = paddedRef.Push(ref.At(i - 1))
			paddedQuery = paddedQuery.Push(query.At(j - 1))
		case rowScore >= diagScore && rowScore >= colScore:
			i += inc
			paddedRef = paddedRef.Push(ref.At(i - 1))
			paddedQuery = paddedQuery.Push(seqgraph.HYPHEN)
		default:
			j += inc
			paddedRef = paddedRef.Push(seqgraph.HYPHEN)
			paddedQuery = paddedQuery.Push(query.At(j - 1))
		}
	}

	for i < refLen && i > 1 {
		i += inc
		paddedRef = paddedRef.Push(ref.At(i - 1))
		paddedQuery = paddedQuery.Push(seqgraph.HYPHEN)
	}

	for j < queryLen && j > 1 {
		j += inc
		paddedRef = paddedRef.Push(seqgraph.HYPHEN)
		paddedQuery = paddedQuery.Push(query.At(j - 1))
	}

	return paddedRef, paddedQuery
}
