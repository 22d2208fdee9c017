package score

import (
	"context"
	"errors"
	"sync"

	"github.com/DarkShadow4/SMT-plusplus/levenshtein"
)

// ErrEmptyReference indicates an error rate over zero reference tokens.
var ErrEmptyReference = errors.New("score: no reference tokens")

// Pair is one transcription to score.
type Pair[T comparable] struct {
	ID         string
	Reference  []T
	Hypothesis []T
}

// Result is the alignment of one Pair.
type Result struct {
	ID       string             `json:"id"`
	Distance int                `json:"distance"`
	RefLen   int                `json:"ref_len"`
	HypLen   int                `json:"hyp_len"`
	Ops      []levenshtein.Op   `json:"-"`
	Counts   levenshtein.Counts `json:"counts"`
}

// ErrorRate returns 100·Distance/RefLen.
func (r Result) ErrorRate() (float64, error) {
	return rate(r.Distance, r.RefLen)
}

// Evaluate aligns hyp against ref.
func Evaluate[T comparable](id string, ref, hyp []T) Result {
	dist, ops := levenshtein.Levenshtein(ref, hyp)

	return Result{
		ID:       id,
		Distance: dist,
		RefLen:   len(ref),
		HypLen:   len(hyp),
		Ops:      ops,
		Counts:   levenshtein.Tally(ops),
	}
}

// Summary aggregates Results.
type Summary struct {
	Samples   int                `json:"samples"`
	Distance  int                `json:"distance"`
	RefTokens int                `json:"ref_tokens"`
	HypTokens int                `json:"hyp_tokens"`
	Counts    levenshtein.Counts `json:"counts"`
}

// ErrorRate returns the corpus error rate in percent.
func (s Summary) ErrorRate() (float64, error) {
	return rate(s.Distance, s.RefTokens)
}

func rate(distance, refLen int) (float64, error) {
	if refLen == 0 {
		return 0, ErrEmptyReference
	}

	return 100 * float64(distance) / float64(refLen), nil
}

// Accumulator sums Results. The zero value is ready to use.
type Accumulator struct {
	mu  sync.Mutex
	sum Summary
}

// Add folds r into the running summary.
func (a *Accumulator) Add(r Result) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sum.Samples++
	a.sum.Distance += r.Distance
	a.sum.RefTokens += r.RefLen
	a.sum.HypTokens += r.HypLen
	a.sum.Counts = a.sum.Counts.Add(r.Counts)
}

// Summary returns a snapshot of the running summary.
func (a *Accumulator) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.sum
}

// Corpus evaluates every pair on up to workers goroutines (at least one).
// Results keep the order of pairs. If ctx is cancelled, Corpus stops
// handing out work and returns ctx.Err().
func Corpus[T comparable](ctx context.Context, pairs []Pair[T], workers int) ([]Result, Summary, error) {
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, max(len(pairs), 1))

	results := make([]Result, len(pairs))
	jobs := make(chan int)

	var (
		acc Accumulator
		wg  sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				p := pairs[k]
				results[k] = Evaluate(p.ID, p.Reference, p.Hypothesis)
				acc.Add(results[k])
			}
		}()
	}

	var err error
feed:
	for k := range pairs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- k:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, Summary{}, err
	}

	return results, acc.Summary(), nil
}
