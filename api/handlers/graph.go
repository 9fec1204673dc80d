// Package handlers holds the REST API's request handlers.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/internal/graphaln"
	"github.com/aria-lang/graphaligner-go/internal/graphio"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

func alignGlobalMax(graph *graphaln.SeqGraph, query seqgraph.Sequence, p dpalign.Params) (*graphaln.Result, bool) {
	return graphaln.AlignGlobalMax(graph, query, p)
}

func alignLocalMax(graph *graphaln.SeqGraph, query seqgraph.Sequence, p dpalign.Params) (*graphaln.Result, bool) {
	return graphaln.AlignLocalMax(graph, query, p)
}

func writeGraphAlignResponse(w http.ResponseWriter, result *graphaln.Result) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GraphAlignResponse{
		Path:        result.Path,
		PaddedRef:   result.PaddedRef.String(),
		PaddedQuery: result.PaddedQuery.String(),
		Score:       result.Score,
		CIGAR:       dpalign.ToCIGAR(result.PaddedRef, result.PaddedQuery),
	})
}

// GraphAlignRequest represents a graph-alignment request: the
// reference is passed through as raw JSON so it can be re-decoded by
// graphio.LoadGraph without an intermediate round-trip.
type GraphAlignRequest struct {
	Graph    json.RawMessage `json:"graph"`
	Query    string          `json:"query"`
	LLocal   bool            `json:"llocal"`
	RLocal   bool            `json:"rlocal"`
	GapOpen  int32           `json:"gap_open"`
	GapExt   int32           `json:"gap_ext"`
	Mismatch int32           `json:"mismatch"`
	Equal    int32           `json:"equal"`
}

// GraphAlignResponse represents the response for a graph alignment.
type GraphAlignResponse struct {
	Path        []uint32 `json:"path"`
	PaddedRef   string   `json:"padded_ref"`
	PaddedQuery string   `json:"padded_query"`
	Score       int32    `json:"score"`
	CIGAR       string   `json:"cigar"`
}

func (req *GraphAlignRequest) params() dpalign.Params {
	p := dpalign.DefaultParams()
	p.LLocal = req.LLocal
	p.RLocal = req.RLocal
	if req.GapOpen != 0 {
		p.GapOpen = req.GapOpen
	}
	if req.GapExt != 0 {
		p.GapExt = req.GapExt
	}
	if req.Mismatch != 0 {
		p.Mismatch = req.Mismatch
	}
	if req.Equal != 0 {
		p.Equal = req.Equal
	}
	return p
}

func decodeGraphAlignRequest(w http.ResponseWriter, r *http.Request) (*GraphAlignRequest, *seqgraph.Sequence, bool) {
	var req GraphAlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return nil, nil, false
	}

	query, err := seqgraph.New(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return nil, nil, false
	}

	return &req, &query, true
}

// GraphAlignGlobalHandler handles exhaustive global-max graph
// alignment requests.
func GraphAlignGlobalHandler(w http.ResponseWriter, r *http.Request) {
	req, query, ok := decodeGraphAlignRequest(w, r)
	if !ok {
		return
	}

	graph, err := graphio.LoadGraph(req.Graph)
	if err != nil {
		http.Error(w, `{"error": "graph: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	result, found := alignGlobalMax(graph, *query, req.params())
	if !found {
		http.Error(w, `{"error": "no feasible path through graph"}`, http.StatusUnprocessableEntity)
		return
	}

	writeGraphAlignResponse(w, result)
}

// GraphAlignLocalHandler handles greedy local-max graph alignment
// requests.
func GraphAlignLocalHandler(w http.ResponseWriter, r *http.Request) {
	req, query, ok := decodeGraphAlignRequest(w, r)
	if !ok {
		return
	}

	graph, err := graphio.LoadGraph(req.Graph)
	if err != nil {
		http.Error(w, `{"error": "graph: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	result, found := alignLocalMax(graph, *query, req.params())
	if !found {
		http.Error(w, `{"error": "no feasible path through graph"}`, http.StatusUnprocessableEntity)
		return
	}

	writeGraphAlignResponse(w, result)
}
