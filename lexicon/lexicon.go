package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

// Lexicon is a set of valid words.
type Lexicon struct {
	words map[string]struct{}
	opts  Options
}

// New builds a Lexicon from words, applying the admission Options.
func New(words []string, opts ...Option) (*Lexicon, error) {
	lx, err := newLexicon(len(words), opts)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		lx.Add(w)
	}
	return lx, nil
}

// Load reads one word per line from r.
// Line terminators are stripped, blank lines are skipped and every other
// line is stored as given (subject to Options).
func Load(r io.Reader, opts ...Option) (*Lexicon, error) {
	lx, err := newLexicon(0, opts)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrDictionaryLoad)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64), maxLineSize)
	for sc.Scan() {
		lx.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}
	return lx, nil
}

// LoadFile opens the dictionary at path and loads it with Load.
func LoadFile(path string, opts ...Option) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}
	defer f.Close()

	lx, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lx, nil
}

func newLexicon(capacity int, opts []Option) (*Lexicon, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Lexicon{
		words: make(map[string]struct{}, capacity),
		opts:  o,
	}, nil
}

// Add admits word into the Lexicon. Empty words and words rejected by the
// length filter are ignored. Add is not safe for concurrent use.
func (lx *Lexicon) Add(word string) {
	if word == "" {
		return
	}
	if lx.opts.Lowercase {
		word = Fold(word)
	}
	if lx.opts.Length > 0 && utf8.RuneCountInString(word) != lx.opts.Length {
		return
	}
	lx.words[word] = struct{}{}
}

// Contains reports whether word is in the Lexicon. Lookups are always
// verbatim; use Fold on user input when the Lexicon was built WithLowercase.
func (lx *Lexicon) Contains(word string) bool {
	if lx == nil {
		return false
	}
	_, ok := lx.words[word]
	return ok
}

// Fold lower-cases word the way WithLowercase folds dictionary entries.
// It is safe for concurrent use.
func Fold(word string) string {
	// cases.Caser keeps state, so each call gets its own
	return cases.Lower(language.Und).String(word)
}

// Len returns the number of distinct words.
func (lx *Lexicon) Len() int {
	if lx == nil {
		return 0
	}
	return len(lx.words)
}

// Words returns every word in ascending order.
func (lx *Lexicon) Words() []string {
	if lx == nil {
		return nil
	}
	out := make([]string, 0, len(lx.words))
	for w := range lx.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
