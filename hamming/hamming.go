package hamming

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrLengthMismatch is returned when two words do not have the same number of letters.
var ErrLengthMismatch = errors.New("hamming: words differ in length")

// Distance returns the number of positions at which a and b differ.
// Both words must have the same rune count; otherwise ErrLengthMismatch
// is returned, wrapped with both words and their lengths.
func Distance(a, b string) (int, error) {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return 0, fmt.Errorf("%w: %q has %d letters, %q has %d", ErrLengthMismatch, a, la, b, lb)
	}

	// fast path: byte-wise compare when both words are plain ASCII
	if la == len(a) && lb == len(b) {
		d := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				d++
			}
		}
		return d, nil
	}

	// compare encoded letters, so each invalid byte stays distinct instead
	// of collapsing into utf8.RuneError
	d := 0
	for i, j := 0, 0; i < len(a); {
		_, sa := utf8.DecodeRuneInString(a[i:])
		_, sb := utf8.DecodeRuneInString(b[j:])
		if a[i:i+sa] != b[j:j+sb] {
			d++
		}
		i, j = i+sa, j+sb
	}

	return d, nil
}

// MustDistance is like Distance but panics on mismatching lengths.
// It is meant for callers that already validated the lengths.
func MustDistance(a, b string) int {
	d, err := Distance(a, b)
	if err != nil {
		panic(err)
	}
	return d
}
