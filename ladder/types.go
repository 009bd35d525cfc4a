package ladder

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and path validation.
var (
	// ErrNilDictionary is returned when New receives a nil Dictionary.
	ErrNilDictionary = errors.New("ladder: dictionary is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrInvalidPath is returned by Validate for a sequence that is not a ladder.
	ErrInvalidPath = errors.New("ladder: invalid ladder")
)

// DefaultAlphabet is the substitution alphabet used unless WithAlphabet is given.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Dictionary is the membership oracle a Graph is built on.
// *lexicon.Lexicon satisfies it.
type Dictionary interface {
	Contains(word string) bool
}

// WordSet is a set of words. The zero value is not usable; make one with
// NewWordSet or make(WordSet). A nil WordSet is a valid, empty exclude set.
type WordSet map[string]struct{}

// NewWordSet returns a set holding words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether w is in the set.
func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Add inserts w and reports whether it was absent.
func (s WordSet) Add(w string) bool {
	if _, ok := s[w]; ok {
		return false
	}
	s[w] = struct{}{}
	return true
}

// Len returns the number of words in the set.
func (s WordSet) Len() int { return len(s) }

// Option configures a Graph via functional arguments.
type Option func(*Options)

// Options holds Graph parameters.
type Options struct {
	// Alphabet lists the letters tried at every position.
	Alphabet string

	err error
}

// DefaultOptions returns the lowercase ASCII alphabet.
func DefaultOptions() Options {
	return Options{Alphabet: DefaultAlphabet}
}

// WithAlphabet sets the substitution letters. Repeated letters are
// tried once; an empty alphabet is an ErrOptionViolation.
func WithAlphabet(s string) Option {
	return func(o *Options) {
		if s == "" {
			o.err = fmt.Errorf("%w: alphabet cannot be empty", ErrOptionViolation)
			return
		}
		o.Alphabet = s
	}
}
