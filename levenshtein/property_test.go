package levenshtein_test

import (
	"math/rand"
	"testing"

	"github.com/DarkShadow4/SMT-plusplus/levenshtein"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"znkr.io/diff"
)

// randomTokens draws n tokens from a small alphabet so matches are common.
func randomTokens(rng *rand.Rand, maxLen, alphabet int) []int {
	s := make([]int, rng.Intn(maxLen+1))
	for k := range s {
		s[k] = rng.Intn(alphabet)
	}

	return s
}

// TestProperties checks the algebraic properties of the engine over
// seeded random token sequences.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 2000; iter++ {
		a := randomTokens(rng, 9, 4)
		b := randomTokens(rng, 9, 4)
		c := randomTokens(rng, 9, 4)

		dab, ops := levenshtein.Levenshtein(a, b)
		dba, _ := levenshtein.Levenshtein(b, a)
		dbc, _ := levenshtein.Levenshtein(b, c)
		dac, _ := levenshtein.Levenshtein(a, c)

		require.Equal(t, dab, dba, "symmetry %v %v", a, b)
		require.LessOrEqual(t, dac, dab+dbc, "triangle inequality %v %v %v", a, b, c)
		require.Equal(t, dab, levenshtein.Distance(a, b), "rolling distance %v %v", a, b)

		counts := levenshtein.Tally(ops)
		require.Equal(t, dab, counts.Edits(), "op count %v %v", a, b)
		require.Equal(t, len(a), counts.Matches+counts.Substitutions+counts.Deletions)
		require.Equal(t, len(b), counts.Matches+counts.Substitutions+counts.Insertions)
		require.GreaterOrEqual(t, len(ops), max(len(a), len(b)))

		// every Match really pairs equal elements, every Substitution unequal ones
		edits, err := levenshtein.Align(a, b, ops)
		require.NoError(t, err)
		for _, e := range edits {
			switch e.Op {
			case levenshtein.Match:
				require.Equal(t, e.X, e.Y)
			case levenshtein.Substitution:
				require.NotEqual(t, e.X, e.Y)
			}
		}
	}
}

// TestProperties_SelfAndEmpty covers d(s,s), d(s,∅) and d(∅,s).
func TestProperties_SelfAndEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		s := randomTokens(rng, 12, 6)

		d, ops := levenshtein.Levenshtein(s, s)
		assert.Zero(t, d)
		assert.Len(t, ops, len(s))
		assert.Equal(t, len(s), levenshtein.Tally(ops).Matches)

		d, ops = levenshtein.Levenshtein(s, nil)
		assert.Equal(t, len(s), d)
		assert.Equal(t, len(s), levenshtein.Tally(ops).Deletions)

		d, ops = levenshtein.Levenshtein(nil, s)
		assert.Equal(t, len(s), d)
		assert.Equal(t, len(s), levenshtein.Tally(ops).Insertions)
	}
}

// TestProperties_DiffOracle compares against an independent diff
// implementation. A diff only inserts and deletes, so its edit count bounds
// the edit distance from above. The alignment must rebuild both inputs.
func TestProperties_DiffOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for iter := 0; iter < 500; iter++ {
		a := randomTokens(rng, 15, 5)
		b := randomTokens(rng, 15, 5)

		dist, ops := levenshtein.Levenshtein(a, b)

		indels := 0
		for _, e := range diff.Edits(a, b) {
			if e.Op != diff.Match {
				indels++
			}
		}
		require.LessOrEqual(t, dist, indels, "%v %v", a, b)

		edits, err := levenshtein.Align(a, b, ops)
		require.NoError(t, err)
		var gotA, gotB []int
		for _, e := range edits {
			if e.Op != levenshtein.Insertion {
				gotA = append(gotA, e.X)
			}
			if e.Op != levenshtein.Deletion {
				gotB = append(gotB, e.Y)
			}
		}
		if d := cmp.Diff(a, gotA, cmpopts.EquateEmpty()); d != "" {
			t.Fatalf("reference not rebuilt (-want +got):\n%s", d)
		}
		if d := cmp.Diff(b, gotB, cmpopts.EquateEmpty()); d != "" {
			t.Fatalf("hypothesis not rebuilt (-want +got):\n%s", d)
		}
	}
}
