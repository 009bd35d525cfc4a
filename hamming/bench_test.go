package hamming_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/hamming"
)

// BenchmarkDistance_ASCII measures the byte-wise fast path.
func BenchmarkDistance_ASCII(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = hamming.Distance("lighthouse", "nightmares")
	}
}

// BenchmarkDistance_Runes measures the rune path for non-ASCII words.
func BenchmarkDistance_Runes(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = hamming.Distance("überprüfen", "überprüfte")
	}
}
