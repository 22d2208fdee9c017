package levenshtein

// Levenshtein returns the edit distance between s1 (reference) and s2
// (hypothesis) together with the operations of one optimal alignment.
//
// Example:
//
//	dist, ops := Levenshtein([]rune("kitten"), []rune("sitting"))
//	// dist == 3, FormatOps(ops) == "SMMMSMI"
//
// Both inputs may be empty; two empty inputs yield (0, []Op{}).
// Complexity: O(m·n) time and memory.
func Levenshtein[T comparable](s1, s2 []T) (distance int, ops []Op) {
	m := NewMatrix(s1, s2)

	return m.Distance(), m.Backtrace()
}

// LevenshteinFunc is like Levenshtein but compares elements with eq.
func LevenshteinFunc[T any](s1, s2 []T, eq func(a, b T) bool) (distance int, ops []Op) {
	m := NewMatrixFunc(s1, s2, eq)

	return m.Distance(), m.Backtrace()
}

// Distance returns only the edit distance between s1 and s2. It keeps two
// rows of the cost matrix, sized by the shorter input.
// Complexity: O(m·n) time, O(min(m,n)) memory.
func Distance[T comparable](s1, s2 []T) int {
	// the distance is symmetric, so iterate over the longer input
	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	var i, j, cost int
	for i = 1; i <= len(s1); i++ {
		curr[0] = i
		for j = 1; j <= len(s2); j++ {
			cost = 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}
