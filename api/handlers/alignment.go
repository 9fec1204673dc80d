package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// FlatAlignRequest represents a flat (non-graph) alignment request.
type FlatAlignRequest struct {
	Reference string `json:"reference"`
	Query     string `json:"query"`
}

// FlatAlignResponse represents the response for a flat alignment.
type FlatAlignResponse struct {
	PaddedRef   string `json:"padded_ref"`
	PaddedQuery string `json:"padded_query"`
	Score       int32  `json:"score"`
	CIGAR       string `json:"cigar"`
}

func decodeFlatAlignRequest(w http.ResponseWriter, r *http.Request) (ref, query seqgraph.Sequence, ok bool) {
	var req FlatAlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return ref, query, false
	}

	ref, err := seqgraph.New(req.Reference)
	if err != nil {
		http.Error(w, `{"error": "reference: `+err.Error()+`"}`, http.StatusBadRequest)
		return ref, query, false
	}

	query, err = seqgraph.New(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return ref, query, false
	}

	return ref, query, true
}

func writeFlatAlignResponse(w http.ResponseWriter, paddedRef, paddedQuery seqgraph.Sequence, score int32) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FlatAlignResponse{
		PaddedRef:   paddedRef.String(),
		PaddedQuery: paddedQuery.String(),
		Score:       score,
		CIGAR:       dpalign.ToCIGAR(paddedRef, paddedQuery),
	})
}

// LocalAlignHandler handles local (both-edges-free) flat alignment
// requests: the affine-gap analogue of classic Smith-Waterman.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	ref, query, ok := decodeFlatAlignRequest(w, r)
	if !ok {
		return
	}

	p := dpalign.DefaultParams()
	p.LLocal = true
	p.RLocal = true

	paddedRef, paddedQuery, score := dpalign.Align(ref, query, p)
	writeFlatAlignResponse(w, paddedRef, paddedQuery, score)
}

// GlobalAlignHandler handles global (both-edges-pinned) flat alignment
// requests: the affine-gap analogue of classic Needleman-Wunsch.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	ref, query, ok := decodeFlatAlignRequest(w, r)
	if !ok {
		return
	}

	paddedRef, paddedQuery, score := dpalign.Align(ref, query, dpalign.DefaultParams())
	writeFlatAlignResponse(w, paddedRef, paddedQuery, score)
}

// AlignmentScoreResponse represents the response for an alignment
// score request.
type AlignmentScoreResponse struct {
	Score int32 `json:"score"`
}

// AlignmentScoreHandler handles alignment-score-only requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	ref, query, ok := decodeFlatAlignRequest(w, r)
	if !ok {
		return
	}

	_, _, score := dpalign.Align(ref, query, dpalign.DefaultParams())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentScoreResponse{Score: score})
}
