// Package ladder exposes a dictionary as an implicit graph: every word is a
// vertex and two words are adjacent when they differ by exactly one letter.
//
// What
//
//   - Graph generates the neighbors of a word on demand; no adjacency is
//     stored, so a 100k-word dictionary costs nothing until it is searched.
//   - Neighbors substitutes each position with each alphabet letter and keeps
//     the candidates present in the dictionary and absent from an exclude set.
//   - Discover does the same and registers every returned word into the
//     exclude set, so a word is handed out at most once per search.
//   - Validate checks that a sequence of words is a legal ladder.
//
// Determinism
//
//	Neighbors are returned position-major, then in alphabet order, so the
//	output for a given word, dictionary and exclude set never changes.
//
// Complexity (n = word length, Σ = alphabet size)
//
//   - Neighbors/Discover: O(n·Σ) dictionary lookups, O(n) extra memory.
//   - Validate:           O(k·n) for a ladder of k words.
//
// Options
//
//   - WithAlphabet(s): letters used for substitution (default "a"…"z").
//
// Errors
//
//   - ErrNilDictionary    if New receives a nil Dictionary.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrInvalidPath      if Validate rejects a ladder.
package ladder
