package vocab

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownToken indicates a token missing from the vocabulary.
	ErrUnknownToken = errors.New("vocab: unknown token")

	// ErrUnknownID indicates an id outside [0, Len()).
	ErrUnknownID = errors.New("vocab: unknown id")

	// ErrDuplicateToken indicates the same token listed twice.
	ErrDuplicateToken = errors.New("vocab: duplicate token")

	// ErrEmptyVocabulary indicates a vocabulary without tokens.
	ErrEmptyVocabulary = errors.New("vocab: no tokens")
)

// Vocabulary is an immutable bidirectional token/id mapping. It is safe
// for concurrent use.
type Vocabulary struct {
	name string
	i2w  []string
	w2i  map[string]int
}

// file is the YAML layout of a vocabulary.
type file struct {
	Name   string   `yaml:"name"`
	Tokens []string `yaml:"tokens"`
}

// New builds a vocabulary where tokens[id] is the token of id.
func New(name string, tokens []string) (*Vocabulary, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v := &Vocabulary{
		name: name,
		i2w:  make([]string, len(tokens)),
		w2i:  make(map[string]int, len(tokens)),
	}
	for id, tok := range tokens {
		if prev, ok := v.w2i[tok]; ok {
			return nil, fmt.Errorf("token %q at %d and %d: %w", tok, prev, id, ErrDuplicateToken)
		}
		v.w2i[tok] = id
		v.i2w[id] = tok
	}

	return v, nil
}

// Parse decodes a YAML vocabulary.
func Parse(data []byte) (*Vocabulary, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("vocab: parse: %w", err)
	}

	return New(f.Name, f.Tokens)
}

// Load reads and parses the YAML vocabulary at path.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// Marshal encodes v in the YAML layout read by Parse.
func (v *Vocabulary) Marshal() ([]byte, error) {
	return yaml.Marshal(file{Name: v.name, Tokens: v.i2w})
}

// Name returns the vocabulary name (usually the dataset).
func (v *Vocabulary) Name() string { return v.name }

// Len returns the number of tokens.
func (v *Vocabulary) Len() int { return len(v.i2w) }

// ID returns the id of tok.
func (v *Vocabulary) ID(tok string) (int, bool) {
	id, ok := v.w2i[tok]

	return id, ok
}

// Token returns the token of id.
func (v *Vocabulary) Token(id int) (string, bool) {
	if id < 0 || id >= len(v.i2w) {
		return "", false
	}

	return v.i2w[id], true
}

// Label returns the token of id, or the id in angle brackets (e.g. "<42>")
// when it is unknown.
func (v *Vocabulary) Label(id int) string {
	if tok, ok := v.Token(id); ok {
		return tok
	}

	return fmt.Sprintf("<%d>", id)
}

// Encode maps tokens to ids.
func (v *Vocabulary) Encode(tokens []string) ([]int, error) {
	ids := make([]int, len(tokens))
	for k, tok := range tokens {
		id, ok := v.w2i[tok]
		if !ok {
			return nil, fmt.Errorf("token %q at %d: %w", tok, k, ErrUnknownToken)
		}
		ids[k] = id
	}

	return ids, nil
}

// Decode maps ids to tokens.
func (v *Vocabulary) Decode(ids []int) ([]string, error) {
	tokens := make([]string, len(ids))
	for k, id := range ids {
		tok, ok := v.Token(id)
		if !ok {
			return nil, fmt.Errorf("id %d at %d: %w", id, k, ErrUnknownID)
		}
		tokens[k] = tok
	}

	return tokens, nil
}
