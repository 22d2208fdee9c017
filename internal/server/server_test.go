package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DarkShadow4/SMT-plusplus/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// do sends a request to a fresh server and returns the recorder.
func do(t *testing.T, cfg server.Config, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.NewServer(cfg).ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, server.Config{}, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestAlign returns distance, op names and pipeline codes.
func TestAlign(t *testing.T) {
	body := `{"reference":["k","i","t","t","e","n"],"hypothesis":["s","i","t","t","i","n","g"]}`
	rec := do(t, server.Config{}, http.MethodPost, "/v1/align", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp server.AlignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Distance)
	assert.Equal(t, []string{
		"substitution", "match", "match", "match", "substitution", "match", "insertion",
	}, resp.Operations)
	assert.Equal(t, []int{0, -1, -1, -1, 0, -1, 1}, resp.Codes)
	assert.Equal(t, 1, resp.Counts.Insertions)
}

// TestAlign_BadRequest rejects malformed and unknown-field bodies.
func TestAlign_BadRequest(t *testing.T) {
	for _, body := range []string{`{"reference":`, `{"ref":["a"]}`, `{"reference":[1]}`} {
		rec := do(t, server.Config{}, http.MethodPost, "/v1/align", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := do(t, server.Config{MaxBodyBytes: 8}, http.MethodPost, "/v1/align", `{"reference":["a","b"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "body over limit")

	rec = do(t, server.Config{}, http.MethodGet, "/v1/align", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestScore scores a small corpus and reports the error rate.
func TestScore(t *testing.T) {
	body := `{"pairs":[
		{"id":"a","reference":["4c","4d","4e","4f"],"hypothesis":["4c","4d","4e","4f"]},
		{"id":"b","reference":["4c","4d","4e","4f"],"hypothesis":["4c","4e","4f"]}
	]}`
	rec := do(t, server.Config{Workers: 2}, http.MethodPost, "/v1/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "a", resp.Results[0].ID)
	assert.Equal(t, "MMMM", resp.Results[0].Operations)
	assert.Equal(t, "MDMM", resp.Results[1].Operations)
	assert.Equal(t, 1, resp.Summary.Distance)
	assert.Equal(t, 8, resp.Summary.RefTokens)
	require.NotNil(t, resp.ErrorRate)
	assert.InDelta(t, 12.5, *resp.ErrorRate, 1e-9)
}

// TestScore_NoReferenceTokens leaves error_rate null.
func TestScore_NoReferenceTokens(t *testing.T) {
	rec := do(t, server.Config{}, http.MethodPost, "/v1/score", `{"pairs":[{"id":"x","reference":[],"hypothesis":["a"]}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_rate":null`)
}
