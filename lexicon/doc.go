// Package lexicon provides the dictionary of valid words for a word ladder:
// an in-memory set-membership oracle built once, before any search starts.
//
// What
//
//   - Load reads a newline-delimited word list from an io.Reader.
//   - LoadFile opens a dictionary file and loads it.
//   - New builds a Lexicon from a word slice (tests, other stores).
//   - Contains answers membership in O(1).
//
// Words are matched verbatim: only line terminators ("\n" and "\r\n") are
// removed and blank lines are skipped. Case folding and length filtering are
// opt-in through WithLowercase and WithLength.
//
// Options
//
//   - WithLowercase():  fold every word to lower case (golang.org/x/text/cases).
//   - WithLength(n):    keep only words of exactly n letters (n > 0; 0 = no filter).
//
// Errors
//
//   - ErrDictionaryLoad   if the source cannot be opened or read.
//   - ErrOptionViolation  if an invalid Option is supplied.
//
// A Lexicon is read-only after construction apart from Add, and may be
// shared by any number of concurrent readers as long as nobody calls Add.
// Contains is verbatim even WithLowercase: stored words are folded, lookups are
// not. Fold applies the same folding to input words.
package lexicon
