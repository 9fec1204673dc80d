// Package graphstats reports on batches of graph alignments: a bounded
// worker pool that runs independent whole-alignment calls concurrently
// (never parallelizing a single query's own DP fill, which stays
// strictly sequential), plus summary statistics over the resulting
// scores.
//
// The worker pool uses semaphore-bounded goroutines writing into an
// index-addressed results slice rather than a channel fan-in, so
// result order matches query order regardless of completion order.
// Summary statistics are computed with gonum.org/v1/gonum/stat rather
// than hand-rolled mean/variance.
package graphstats

import (
	"runtime"
	"sync"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/internal/graphaln"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
	"gonum.org/v1/gonum/stat"
)

// Query names one batch member: a label plus the sequence to align.
type Query struct {
	Name string
	Seq  seqgraph.Sequence
}

// BatchResult is one query's outcome. Found is false when the graph
// has no feasible path for this query (an empty graph).
type BatchResult struct {
	Query *graphaln.Result
	Name  string
	Found bool
}

// Strategy selects which graph traversal a batch run uses.
type Strategy int

const (
	GlobalMax Strategy = iota
	LocalMax
)

// RunBatch aligns every query in queries against graph concurrently,
// bounded to numWorkers simultaneous alignments (0 picks GOMAXPROCS).
// Each alignment still fills its own private shared matrix internally
// and runs its DP strictly sequentially; only the queries themselves
// run in parallel.
func RunBatch(graph *graphaln.SeqGraph, queries []Query, strategy Strategy, p dpalign.Params, numWorkers int) []BatchResult {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > len(queries) {
		numWorkers = len(queries)
	}
	if numWorkers == 0 {
		return nil
	}

	results := make([]BatchResult, len(queries))
	semaphore := make(chan struct{}, numWorkers)
	var wg sync.WaitGroup

	for i, q := range queries {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(index int, q Query) {
			defer wg.Done()
			defer func() { <-semaphore }()

			var res *graphaln.Result
			var ok bool
			switch strategy {
			case LocalMax:
				res, ok = graphaln.AlignLocalMax(graph, q.Seq, p)
			default:
				res, ok = graphaln.AlignGlobalMax(graph, q.Seq, p)
			}
			results[index] = BatchResult{Query: res, Name: q.Name, Found: ok}
		}(i, q)
	}

	wg.Wait()
	close(semaphore)
	return results
}

// ScoreSummary is the aggregate score statistics over a batch.
type ScoreSummary struct {
	Count         int
	MeanScore     float64
	VarianceScore float64
	MinScore      int32
	MaxScore      int32
}

// Summarize computes ScoreSummary over every found result in results,
// ignoring batch members with no feasible path.
func Summarize(results []BatchResult) ScoreSummary {
	scores := make([]float64, 0, len(results))
	var minS, maxS int32
	first := true
	for _, r := range results {
		if !r.Found {
			continue
		}
		s := r.Query.Score
		scores = append(scores, float64(s))
		if first || s < minS {
			minS = s
		}
		if first || s > maxS {
			maxS = s
		}
		first = false
	}

	if len(scores) == 0 {
		return ScoreSummary{}
	}

	mean, variance := stat.MeanVariance(scores, nil)
	return ScoreSummary{
		Count:         len(scores),
		MeanScore:     mean,
		VarianceScore: variance,
		MinScore:      minS,
		MaxScore:      maxS,
	}
}
