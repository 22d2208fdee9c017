// Package transcript reads tokenized transcriptions from disk.
//
// A transcription file holds whitespace-separated tokens; line breaks carry
// no meaning. Reference and hypothesis directories are paired by file name.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/DarkShadow4/SMT-plusplus/score"
)

// ErrMissingHypothesis indicates a reference file without a hypothesis.
var ErrMissingHypothesis = errors.New("transcript: missing hypothesis")

// Tokens splits r into whitespace-separated tokens.
func Tokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}

	return tokens, nil
}

// ReadFile returns the tokens of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	defer f.Close()

	tokens, err := Tokens(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tokens, nil
}

// PairDirs pairs every regular file in refDir with the file of the same
// name in hypDir, sorted by name. The pair ID is the file name. Extra
// files in hypDir are ignored.
func PairDirs(refDir, hypDir string) ([]score.Pair[string], error) {
	entries, err := os.ReadDir(refDir)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	pairs := make([]score.Pair[string], 0, len(names))
	for _, name := range names {
		ref, err := ReadFile(filepath.Join(refDir, name))
		if err != nil {
			return nil, err
		}
		hyp, err := ReadFile(filepath.Join(hypDir, name))
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrMissingHypothesis)
		}
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, score.Pair[string]{ID: name, Reference: ref, Hypothesis: hyp})
	}

	return pairs, nil
}
