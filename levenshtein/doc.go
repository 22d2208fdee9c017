// Package levenshtein computes edit distances between token sequences and
// recovers the alignment (match, substitution, insertion, deletion) that
// produces them.
//
// What is it for?
//
//	Scoring a model transcription (hypothesis) against ground truth
//	(reference). The distance feeds symbol/character error rates, the
//	operations tell you *where* the transcription went wrong:
//	  • OMR token sequences (kern tokens, vocabulary ids)
//	  • OCR / ASR character and word sequences
//	  • any []T with T comparable, or []T with a custom equality
//
// Key features:
//   - full cost matrix with deterministic backtrace (Levenshtein, NewMatrix)
//   - distance-only mode with two rolling rows (Distance)
//   - aligned element pairs from an operation list (Align)
//   - diagnostic matrix dump with caller labels (Render)
//
// Usage:
//
//	import "github.com/DarkShadow4/SMT-plusplus/levenshtein"
//
//	dist, ops := levenshtein.Levenshtein(reference, hypothesis)
//	counts := levenshtein.Tally(ops) // counts.Edits() == dist
//
// Tie-break policy:
//
//	At every backtrace step the diagonal predecessor is tried first (taken
//	when its cost is <= the current cell), then the left cell (insertion)
//	and the upper cell (deletion), each only when strictly cheaper than the
//	best candidate so far. Deletion therefore wins ties with insertion, and
//	insertion wins ties with a costed substitution. Alignments are
//	bit-identical across runs and platforms.
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (Levenshtein, NewMatrix) or O(min(m,n)) (Distance)
//
// See example_test.go for runnable examples.
package levenshtein
