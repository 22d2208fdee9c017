// Package server exposes the edit-distance engine over HTTP.
//
//	GET  /health     liveness probe
//	POST /v1/align   align one reference/hypothesis pair
//	POST /v1/score   score a corpus of pairs
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DarkShadow4/SMT-plusplus/levenshtein"
	"github.com/DarkShadow4/SMT-plusplus/score"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 8 << 20

// Config tunes the handlers.
type Config struct {
	// Workers is the scoring pool size for /v1/score (default 1).
	Workers int
	// MaxBodyBytes bounds request bodies (default DefaultMaxBodyBytes).
	MaxBodyBytes int64
}

// AlignRequest is the body of POST /v1/align.
type AlignRequest struct {
	Reference  []string `json:"reference"`
	Hypothesis []string `json:"hypothesis"`
}

// AlignResponse is the reply of POST /v1/align.
type AlignResponse struct {
	Distance   int                `json:"distance"`
	Operations []string           `json:"operations"`
	Codes      []int              `json:"codes"`
	Counts     levenshtein.Counts `json:"counts"`
}

// ScorePair is one sample of a ScoreRequest.
type ScorePair struct {
	ID         string   `json:"id"`
	Reference  []string `json:"reference"`
	Hypothesis []string `json:"hypothesis"`
}

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	Pairs []ScorePair `json:"pairs"`
}

// ScoreResult is one scored sample.
type ScoreResult struct {
	score.Result
	Operations string `json:"operations"`
}

// ScoreResponse is the reply of POST /v1/score. ErrorRate is null when
// the corpus has no reference tokens.
type ScoreResponse struct {
	Results   []ScoreResult `json:"results"`
	Summary   score.Summary `json:"summary"`
	ErrorRate *float64      `json:"error_rate"`
}

// NewServer wires the handlers into a chi router.
func NewServer(cfg Config) http.Handler {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &handlers{cfg: cfg}

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/align", h.align)
		r.Post("/score", h.score)
	})

	return r
}

type handlers struct {
	cfg Config
}

func (h *handlers) align(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if !h.decode(w, r, &req) {
		return
	}

	dist, ops := levenshtein.Levenshtein(req.Reference, req.Hypothesis)
	names := make([]string, len(ops))
	for k, op := range ops {
		names[k] = op.String()
	}

	writeJSON(w, http.StatusOK, AlignResponse{
		Distance:   dist,
		Operations: names,
		Codes:      levenshtein.Codes(ops),
		Counts:     levenshtein.Tally(ops),
	})
}

func (h *handlers) score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !h.decode(w, r, &req) {
		return
	}

	pairs := make([]score.Pair[string], len(req.Pairs))
	for k, p := range req.Pairs {
		pairs[k] = score.Pair[string]{ID: p.ID, Reference: p.Reference, Hypothesis: p.Hypothesis}
	}

	results, sum, err := score.Corpus(r.Context(), pairs, h.cfg.Workers)
	if err != nil {
		http.Error(w, fmt.Sprintf("score failed: %v", err), http.StatusServiceUnavailable)
		return
	}

	resp := ScoreResponse{Results: make([]ScoreResult, len(results)), Summary: sum}
	for k, res := range results {
		resp.Results[k] = ScoreResult{Result: res, Operations: levenshtein.FormatOps(res.Ops)}
	}
	if er, err := sum.ErrorRate(); err == nil {
		resp.ErrorRate = &er
	} else if !errors.Is(err, score.ErrEmptyReference) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decode reads a JSON body into v, replying 400 on failure.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
