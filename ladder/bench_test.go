package ladder_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

// BenchmarkNeighbors_Dense measures neighbor generation when every
// three-letter word over a 10-letter alphabet exists (1000 words).
func BenchmarkNeighbors_Dense(b *testing.B) {
	const letters = "abcdefghij"
	words := make([]string, 0, 1000)
	for _, x := range letters {
		for _, y := range letters {
			for _, z := range letters {
				words = append(words, fmt.Sprintf("%c%c%c", x, y, z))
			}
		}
	}
	lx, _ := lexicon.New(words)
	g, _ := ladder.New(lx)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("eee", nil)
	}
}
