package score_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/DarkShadow4/SMT-plusplus/levenshtein"
	"github.com/DarkShadow4/SMT-plusplus/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate aligns one transcription and reports its error rate.
func TestEvaluate(t *testing.T) {
	r := score.Evaluate("kitten", []rune("kitten"), []rune("sitting"))
	assert.Equal(t, 3, r.Distance)
	assert.Equal(t, 6, r.RefLen)
	assert.Equal(t, 7, r.HypLen)
	assert.Equal(t, "SMMMSMI", levenshtein.FormatOps(r.Ops))
	assert.Equal(t, levenshtein.Counts{Matches: 4, Substitutions: 2, Insertions: 1}, r.Counts)

	er, err := r.ErrorRate()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, er, 1e-9)
}

// TestErrorRate_EmptyReference reports ErrEmptyReference.
func TestErrorRate_EmptyReference(t *testing.T) {
	r := score.Evaluate("empty", []int{}, []int{1, 2})
	_, err := r.ErrorRate()
	assert.ErrorIs(t, err, score.ErrEmptyReference)

	_, err = score.Summary{}.ErrorRate()
	assert.ErrorIs(t, err, score.ErrEmptyReference)
}

// TestAccumulator_Concurrent adds from many goroutines.
func TestAccumulator_Concurrent(t *testing.T) {
	var (
		acc score.Accumulator
		wg  sync.WaitGroup
	)
	r := score.Evaluate("x", []int{1, 2, 3, 4}, []int{1, 3, 4})
	for k := 0; k < 64; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Add(r)
		}()
	}
	wg.Wait()

	s := acc.Summary()
	assert.Equal(t, 64, s.Samples)
	assert.Equal(t, 64, s.Distance)
	assert.Equal(t, 256, s.RefTokens)
	assert.Equal(t, 192, s.HypTokens)
	assert.Equal(t, 64, s.Counts.Deletions)

	er, err := s.ErrorRate()
	require.NoError(t, err)
	assert.InDelta(t, 25.0, er, 1e-9)
}

// TestCorpus_OrderAndSummary scores a corpus on several workers.
func TestCorpus_OrderAndSummary(t *testing.T) {
	var pairs []score.Pair[string]
	for k := 0; k < 50; k++ {
		ref := []string{"*clefG2", "4c", "4d", "=="}
		hyp := []string{"*clefG2", "4c", "4d", "=="}
		if k%5 == 0 {
			hyp = []string{"*clefG2", "4e", "=="}
		}
		pairs = append(pairs, score.Pair[string]{ID: fmt.Sprint(k), Reference: ref, Hypothesis: hyp})
	}

	results, sum, err := score.Corpus(context.Background(), pairs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(pairs))
	for k, r := range results {
		assert.Equal(t, fmt.Sprint(k), r.ID)
	}
	assert.Equal(t, 50, sum.Samples)
	assert.Equal(t, 20, sum.Distance) // 10 pairs × (1 sub + 1 del)
	assert.Equal(t, 200, sum.RefTokens)

	er, err := sum.ErrorRate()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, er, 1e-9)
}

// TestCorpus_Empty returns an empty summary without error.
func TestCorpus_Empty(t *testing.T) {
	results, sum, err := score.Corpus[int](context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, sum.Samples)
}

// TestCorpus_Cancelled stops on a cancelled context.
func TestCorpus_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := []score.Pair[int]{{ID: "a", Reference: []int{1}, Hypothesis: []int{2}}}
	_, _, err := score.Corpus(ctx, pairs, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
