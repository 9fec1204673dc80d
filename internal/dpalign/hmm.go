package dpalign

import (
	"errors"

	"github.com/aria-lang/graphaligner-go/internal/matrix"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// ProbMatr is a per-base emission-probability matrix (alphabet size x
// reference length), the shape an HMM-style aligner would consume in
// place of a fixed reference Sequence.
type ProbMatr = matrix.Matrix[float32]

// ErrHMMNotImplemented is returned by AlignHMM unconditionally.
var ErrHMMNotImplemented = errors.New("dpalign: HMM alignment is not implemented")

// AlignHMM is a stub: probabilistic-reference alignment was never
// finished upstream and is out of scope here. It always fails.
func AlignHMM(reference ProbMatr, query seqgraph.Sequence, p Params) error {
	return ErrHMMNotImplemented
}
