package ladder

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/hamming"
)

// Graph is the implicit single-substitution graph over a Dictionary.
// It holds no mutable state and is safe for concurrent use as long as the
// Dictionary is.
type Graph struct {
	dict     Dictionary
	alphabet []rune
}

// New builds a Graph over dict.
func New(dict Dictionary, opts ...Option) (*Graph, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// collapse repeated letters, keep first-seen order
	seen := make(map[rune]bool, len(o.Alphabet))
	alphabet := make([]rune, 0, len(o.Alphabet))
	for _, r := range o.Alphabet {
		if !seen[r] {
			seen[r] = true
			alphabet = append(alphabet, r)
		}
	}

	return &Graph{dict: dict, alphabet: alphabet}, nil
}

// Alphabet returns the substitution letters in the order they are tried.
func (g *Graph) Alphabet() string { return string(g.alphabet) }

// Contains reports whether word is in the underlying dictionary.
func (g *Graph) Contains(word string) bool { return g.dict.Contains(word) }

// Neighbors returns the dictionary words that differ from word in exactly
// one position and are not in exclude. word itself is never returned.
func (g *Graph) Neighbors(word string, exclude WordSet) []string {
	var out []string
	g.walk(word, func(cand string) {
		if !exclude.Has(cand) {
			out = append(out, cand)
		}
	})
	return out
}

// Discover returns the neighbors of word not yet in seen and adds each of
// them to seen, so no word is returned twice across calls sharing seen.
// seen must not be nil.
func (g *Graph) Discover(word string, seen WordSet) []string {
	var out []string
	g.walk(word, func(cand string) {
		if seen.Add(cand) {
			out = append(out, cand)
		}
	})
	return out
}

// walk calls fn for every dictionary word one substitution away from word,
// position-major then alphabet order. Positions are UTF-8 sequences; an
// invalid byte counts as one position and is replaced as a whole.
func (g *Graph) walk(word string, fn func(cand string)) {
	for off := 0; off < len(word); {
		_, size := utf8.DecodeRuneInString(word[off:])
		orig := word[off : off+size]
		for _, c := range g.alphabet {
			letter := string(c)
			if letter == orig {
				continue
			}
			cand := word[:off] + letter + word[off+size:]
			if g.dict.Contains(cand) {
				fn(cand)
			}
		}
		off += size
	}
}

// Adjacent reports whether a and b have the same length and differ in
// exactly one position.
func Adjacent(a, b string) bool {
	d, err := hamming.Distance(a, b)
	return err == nil && d == 1
}

// Validate reports whether path is a ladder over g: non-empty, every word
// after the first is in the dictionary and consecutive words are Adjacent.
// The first word may be outside the dictionary, matching how searches start.
func (g *Graph) Validate(path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i := 1; i < len(path); i++ {
		if !Adjacent(path[i-1], path[i]) {
			return fmt.Errorf("%w: step %d %q→%q is not a single substitution", ErrInvalidPath, i, path[i-1], path[i])
		}
		if !g.dict.Contains(path[i]) {
			return fmt.Errorf("%w: step %d %q is not in the dictionary", ErrInvalidPath, i, path[i])
		}
	}
	return nil
}
