// Package graphaligner is the public facade over the engine: construct
// a Sequence or SeqGraph, align one against the other, get back a
// padded alignment and score. Internal packages hold the actual
// implementation; this package just re-exports the pieces an external
// caller needs.
package graphaligner

import (
	"fmt"
	"io"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/internal/graphaln"
	"github.com/aria-lang/graphaligner-go/internal/graphio"
	"github.com/aria-lang/graphaligner-go/internal/graphstats"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

type (
	Sequence = seqgraph.Sequence
	Params   = dpalign.Params
	SeqGraph = graphaln.SeqGraph
	Result   = graphaln.Result
	Query    = graphstats.Query
	Strategy = graphstats.Strategy
)

const (
	GlobalMax = graphstats.GlobalMax
	LocalMax  = graphstats.LocalMax
)

// NewSequence validates and wraps a raw string of bases.
func NewSequence(bases string) (Sequence, error) {
	return seqgraph.New(bases)
}

// DefaultParams returns the conventional affine-gap scoring defaults
// (both edges global, unit gap/mismatch penalty, unit match reward).
func DefaultParams() Params {
	return dpalign.DefaultParams()
}

// Align runs a flat alignment of query against ref.
func Align(ref, query Sequence, p Params) (paddedRef, paddedQuery Sequence, score int32) {
	return dpalign.Align(ref, query, p)
}

// LoadGraph decodes a branching reference from its JSON wire format.
func LoadGraph(data []byte) (*SeqGraph, error) {
	return graphio.LoadGraph(data)
}

// ReadQueryFASTA parses every record in r into a FASTA record list.
func ReadQueryFASTA(r io.Reader) ([]graphio.FastaRecord, error) {
	return graphio.ReadQueryFASTA(r)
}

// ReadQueryFASTQ parses every record in r, discarding quality scores.
func ReadQueryFASTQ(r io.Reader) ([]graphio.FastaRecord, error) {
	return graphio.ReadQueryFASTQ(r)
}

// AlignGlobalMax exhaustively aligns query against graph, returning
// the path whose running maximum score is highest.
func AlignGlobalMax(graph *SeqGraph, query Sequence, p Params) (*Result, bool) {
	return graphaln.AlignGlobalMax(graph, query, p)
}

// AlignLocalMax greedily aligns query against graph, committing to the
// best-scoring branch member one segment ahead at each fork.
func AlignLocalMax(graph *SeqGraph, query Sequence, p Params) (*Result, bool) {
	return graphaln.AlignLocalMax(graph, query, p)
}

// RunBatch aligns every query in queries against graph concurrently.
func RunBatch(graph *SeqGraph, queries []Query, strategy Strategy, p Params, numWorkers int) []graphstats.BatchResult {
	return graphstats.RunBatch(graph, queries, strategy, p, numWorkers)
}

// SummarizeBatch computes aggregate score statistics over a batch run.
func SummarizeBatch(results []graphstats.BatchResult) graphstats.ScoreSummary {
	return graphstats.Summarize(results)
}

// Version returns the engine's version.
func Version() string {
	return "1.0.0"
}

// Info returns a human-readable description of the engine.
func Info() string {
	return fmt.Sprintf(`graphaligner v%s - Sequence-Graph Alignment Engine

An affine-gap dynamic-programming aligner over both flat references
and branching (DAG-shaped) references.

Features:
  - Affine gap-penalty alignment with independently configurable
    global/local left and right edges
  - Exhaustive global-maximum and greedy local-maximum traversal of a
    branching reference graph
  - JSON graph decoding and FASTA query parsing
  - Concurrent batch alignment with aggregate score statistics
`, Version())
}
