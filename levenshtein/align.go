package levenshtein

import "fmt"

// Edit is one column of an alignment.
//
//   - Match, Substitution: X from s1 and Y from s2.
//   - Insertion: Y from s2, X is the zero value.
//   - Deletion:  X from s1, Y is the zero value.
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Align pairs up the elements of s1 and s2 along ops, as returned by
// Levenshtein or Backtrace. It returns ErrOpsMismatch when ops run past
// either sequence or leave elements unconsumed.
// Complexity: O(len(ops)).
func Align[T any](s1, s2 []T, ops []Op) ([]Edit[T], error) {
	edits := make([]Edit[T], 0, len(ops))

	var i, j int
	for k, op := range ops {
		var e Edit[T]
		e.Op = op
		switch op {
		case Match, Substitution:
			if i >= len(s1) || j >= len(s2) {
				return nil, fmt.Errorf("op %d (%s) at (%d,%d): %w", k, op, i, j, ErrOpsMismatch)
			}
			e.X, e.Y = s1[i], s2[j]
			i++
			j++
		case Insertion:
			if j >= len(s2) {
				return nil, fmt.Errorf("op %d (%s) at (%d,%d): %w", k, op, i, j, ErrOpsMismatch)
			}
			e.Y = s2[j]
			j++
		case Deletion:
			if i >= len(s1) {
				return nil, fmt.Errorf("op %d (%s) at (%d,%d): %w", k, op, i, j, ErrOpsMismatch)
			}
			e.X = s1[i]
			i++
		default:
			return nil, fmt.Errorf("op %d (%s): %w", k, op, ErrOpsMismatch)
		}
		edits = append(edits, e)
	}

	if i != len(s1) || j != len(s2) {
		return nil, fmt.Errorf("consumed (%d,%d) of (%d,%d): %w", i, j, len(s1), len(s2), ErrOpsMismatch)
	}

	return edits, nil
}
