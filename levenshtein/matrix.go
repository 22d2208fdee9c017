package levenshtein

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is the (m+1)x(n+1) edit-distance cost matrix of a reference of
// length m and a hypothesis of length n. Cell (i,j) holds the minimum number
// of edits turning the first i reference elements into the first j
// hypothesis elements. Storage is a flat row-major slice.
type Matrix struct {
	r, c int   // m+1 rows, n+1 columns
	data []int // length r*c
}

// NewMatrix builds the cost matrix of s1 (reference) and s2 (hypothesis)
// using == for element equality.
// Complexity: O(m·n) time and memory.
func NewMatrix[T comparable](s1, s2 []T) *Matrix {
	return NewMatrixFunc(s1, s2, func(a, b T) bool { return a == b })
}

// NewMatrixFunc is like NewMatrix but compares elements with eq.
//
// Algorithm:
//  1. Allocate (m+1)x(n+1).
//  2. Base cases: D[i][0] = i, D[0][j] = j.
//  3. For j = 1..n (outer), i = 1..m (inner):
//     cost    = 0 if eq(s1[i-1], s2[j-1]) else 1
//     D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost)
func NewMatrixFunc[T any](s1, s2 []T, eq func(a, b T) bool) *Matrix {
	m := newMatrix(len(s1)+1, len(s2)+1)

	// Base cases: empty prefixes
	for i := 0; i < m.r; i++ {
		m.data[i*m.c] = i
	}
	for j := 0; j < m.c; j++ {
		m.data[j] = j
	}

	// Column-major fill; every cell depends on up, left and diagonal only.
	var i, j, cost int
	for j = 1; j < m.c; j++ {
		for i = 1; i < m.r; i++ {
			cost = 1
			if eq(s1[i-1], s2[j-1]) {
				cost = 0
			}
			m.data[i*m.c+j] = min(
				m.at(i-1, j)+1,      // deletion
				m.at(i, j-1)+1,      // insertion
				m.at(i-1, j-1)+cost, // match or substitution
			)
		}
	}

	return m
}

// newMatrix allocates a zeroed rows×cols matrix.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]int, rows*cols)}
}

// at reads (i,j) without bounds checks.
func (m *Matrix) at(i, j int) int {
	return m.data[i*m.c+j]
}

// Rows returns m+1.
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns n+1.
func (m *Matrix) Cols() int {
	return m.c
}

// At returns cell (i,j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// Distance returns the edit distance, cell (m,n).
func (m *Matrix) Distance() int {
	return m.at(m.r-1, m.c-1)
}

// Backtrace walks from (m,n) back to (0,0) and returns the operations of the
// optimal path in forward order.
//
// At each step, with next = D[i][j] and op = Match:
//  1. diagonal (i>0, j>0): if D[i-1][j-1] <= next, op = Match when equal to
//     next, else Substitution; next = D[i-1][j-1].
//  2. left (j>0):  if D[i][j-1] < next, op = Insertion.
//  3. up (i>0):    if D[i-1][j] < next, op = Deletion.
//
// The returned slice has one entry per step, m+n minus the number of
// diagonal steps, which is never less than max(m,n).
// Complexity: O(m+n) time and memory.
func (m *Matrix) Backtrace() []Op {
	i, j := m.r-1, m.c-1
	ops := make([]Op, 0, max(i, j))

	var (
		next, ni, nj int
		op           Op
	)
	for i+j > 0 {
		next, op = m.at(i, j), Match
		ni, nj = i, j

		if j > 0 {
			if i > 0 && m.at(i-1, j-1) <= next {
				op = Substitution
				if m.at(i-1, j-1) == next {
					op = Match
				}
				next, ni, nj = m.at(i-1, j-1), i-1, j-1
			}
			if m.at(i, j-1) < next {
				op = Insertion
				next, ni, nj = m.at(i, j-1), i, j-1
			}
		}
		if i > 0 && m.at(i-1, j) < next {
			op = Deletion
			ni, nj = i-1, j
		}

		ops = append(ops, op)
		i, j = ni, nj
	}

	// reverse in place: steps were collected from the end
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}

// String renders the matrix one row per line, for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.at(i, j)))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
