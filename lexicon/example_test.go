package lexicon_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/lexicon"
)

// ExampleLoad loads a tiny newline-delimited dictionary.
func ExampleLoad() {
	src := strings.NewReader("cat\ncot\ncog\ndog\n")
	lx, err := lexicon.Load(src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(lx.Len(), lx.Contains("cog"), lx.Contains("cag"))
	// Output: 4 true false
}
