package levenshtein

import "errors"

var (
	// ErrOutOfRange indicates a matrix cell index outside [0..m]x[0..n].
	ErrOutOfRange = errors.New("levenshtein: index out of range")

	// ErrOpsMismatch indicates an operation list that does not consume both
	// sequences exactly.
	ErrOpsMismatch = errors.New("levenshtein: operations do not match sequences")

	// ErrUnknownOpCode indicates an integer code outside {-1, 0, 1, 2}.
	ErrUnknownOpCode = errors.New("levenshtein: unknown operation code")

	// ErrUnknownOpSymbol indicates a symbol outside {M, S, I, D}.
	ErrUnknownOpSymbol = errors.New("levenshtein: unknown operation symbol")
)
