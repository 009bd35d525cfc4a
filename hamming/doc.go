// Package hamming measures how far apart two equal-length words are.
//
// What
//
//   - Distance counts the positions at which two words carry different letters.
//   - Positions are runes, so multi-byte letters count once.
//   - Words of different length are rejected with ErrLengthMismatch instead of
//     a magic negative value.
//
// Why
//
//	In a ladder where every move substitutes exactly one letter, a move can fix
//	at most one mismatching position. The Hamming distance to the goal therefore
//	never overestimates the number of moves left: it is admissible and
//	consistent, which is what A* needs to return shortest ladders.
//
// Complexity
//
//   - Time:   O(n) for words of n runes.
//   - Memory: O(1) for ASCII words, O(n) otherwise.
//
// Errors
//
//   - ErrLengthMismatch if the two words differ in rune count.
package hamming
