package lexicon

import (
	"errors"
	"fmt"
)

// Sentinel errors for dictionary loading.
var (
	// ErrDictionaryLoad is returned when a dictionary source cannot be read.
	ErrDictionaryLoad = errors.New("lexicon: cannot load dictionary")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lexicon: invalid option supplied")
)

// Option configures how words are admitted into a Lexicon.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by the constructor that received it.
type Option func(*Options)

// Options holds the word admission rules.
type Options struct {
	// Lowercase folds every word to lower case before it is stored.
	Lowercase bool

	// Length, if > 0, keeps only words with exactly that many letters.
	Length int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns verbatim matching with no length filter.
func DefaultOptions() Options {
	return Options{}
}

// WithLowercase folds words to lower case on load.
func WithLowercase() Option {
	return func(o *Options) {
		o.Lowercase = true
	}
}

// WithLength keeps only words of exactly n letters.
//
//	n > 0: filter by length
//	n == 0: no filter
//	n < 0: invalid option → ErrOptionViolation
func WithLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Length cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Length = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
