// Package score turns per-sample alignments into corpus error rates.
//
// Each (reference, hypothesis) pair is aligned with package levenshtein;
// the corpus error rate is the summed edit distance over the summed
// reference length, in percent:
//
//	ER = 100 · Σ distance / Σ len(reference)
//
// Over kern tokens this is the symbol error rate (SER), over characters the
// character error rate (CER).
//
// Corpus scores pairs on a bounded worker pool and returns results in input
// order. Accumulator is safe for concurrent use.
package score
