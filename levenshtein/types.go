package levenshtein

import "fmt"

// Op is a single alignment operation between a reference and a hypothesis.
//
//   - Match        elements are equal, no cost.
//   - Substitution reference element replaced by hypothesis element, cost 1.
//   - Insertion    hypothesis element with no reference counterpart, cost 1.
//   - Deletion     reference element missing from the hypothesis, cost 1.
type Op int8

const (
	// Match is the zero value; it is also the backtrace's initial choice.
	Match Op = iota
	Substitution
	Insertion
	Deletion
)

// Integer codes used by the evaluation pipeline's operation tensors.
const (
	CodeMatch        = -1
	CodeSubstitution = 0
	CodeInsertion    = 1
	CodeDeletion     = 2
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case Match:
		return "match"
	case Substitution:
		return "substitution"
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	default:
		return fmt.Sprintf("Op(%d)", int8(o))
	}
}

// Symbol returns the one-letter form: M, S, I or D ('?' for invalid values).
func (o Op) Symbol() byte {
	switch o {
	case Match:
		return 'M'
	case Substitution:
		return 'S'
	case Insertion:
		return 'I'
	case Deletion:
		return 'D'
	default:
		return '?'
	}
}

// Code returns the pipeline integer code of o.
func (o Op) Code() int {
	switch o {
	case Substitution:
		return CodeSubstitution
	case Insertion:
		return CodeInsertion
	case Deletion:
		return CodeDeletion
	default:
		return CodeMatch
	}
}

// OpFromCode is the inverse of Op.Code.
func OpFromCode(code int) (Op, error) {
	switch code {
	case CodeMatch:
		return Match, nil
	case CodeSubstitution:
		return Substitution, nil
	case CodeInsertion:
		return Insertion, nil
	case CodeDeletion:
		return Deletion, nil
	default:
		return Match, fmt.Errorf("code %d: %w", code, ErrUnknownOpCode)
	}
}

// Codes maps ops to their pipeline integer codes.
func Codes(ops []Op) []int {
	codes := make([]int, len(ops))
	for k, o := range ops {
		codes[k] = o.Code()
	}

	return codes
}

// FormatOps renders ops in symbol form, e.g. "SMMMSMI".
func FormatOps(ops []Op) string {
	b := make([]byte, len(ops))
	for k, o := range ops {
		b[k] = o.Symbol()
	}

	return string(b)
}

// ParseOps is the inverse of FormatOps.
func ParseOps(s string) ([]Op, error) {
	ops := make([]Op, len(s))
	for k := 0; k < len(s); k++ {
		switch s[k] {
		case 'M':
			ops[k] = Match
		case 'S':
			ops[k] = Substitution
		case 'I':
			ops[k] = Insertion
		case 'D':
			ops[k] = Deletion
		default:
			return nil, fmt.Errorf("symbol %q at %d: %w", s[k], k, ErrUnknownOpSymbol)
		}
	}

	return ops, nil
}

// Counts tallies operations by kind.
type Counts struct {
	Matches       int `json:"matches"`
	Substitutions int `json:"substitutions"`
	Insertions    int `json:"insertions"`
	Deletions     int `json:"deletions"`
}

// Tally counts each kind of operation in ops.
func Tally(ops []Op) Counts {
	var c Counts
	for _, o := range ops {
		switch o {
		case Match:
			c.Matches++
		case Substitution:
			c.Substitutions++
		case Insertion:
			c.Insertions++
		case Deletion:
			c.Deletions++
		}
	}

	return c
}

// Edits returns the number of costed operations. For ops produced by
// Backtrace this equals the edit distance.
func (c Counts) Edits() int {
	return c.Substitutions + c.Insertions + c.Deletions
}

// Add returns the field-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Matches:       c.Matches + other.Matches,
		Substitutions: c.Substitutions + other.Substitutions,
		Insertions:    c.Insertions + other.Insertions,
		Deletions:     c.Deletions + other.Deletions,
	}
}
