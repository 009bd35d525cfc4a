// Package wordladder finds word ladders: sequences of equal-length words
// from a start word to a goal word where each step changes exactly one
// letter and every intermediate word is in a dictionary.
//
// The library is organized in small, single-purpose packages:
//
//	hamming/          position-wise letter distance, the search heuristic
//	lexicon/          dictionary loading (text files, readers, word slices)
//	lexicon/sqlite/   dictionary persisted in a SQLite database
//	ladder/           implicit one-letter-change graph over a dictionary
//	astar/            A* search engine with stepping, budgets and cancellation
//	bfs/              breadth-first traversal and unweighted shortest ladder
//
// A minimal search:
//
//	lx, _ := lexicon.LoadFile("words.txt")
//	g, _ := ladder.New(lx)
//	res, err := astar.Solve(g, "cat", "dog")
//	if err != nil {
//		// astar.ErrNoPath, astar.ErrLengthMismatch, ...
//	}
//	fmt.Println(res.Path, res.Cost) // [cat cot dot dog] 3
//
// The wordladder command (cmd/wordladder) wraps the same pipeline with
// interactive prompts, environment/flag configuration and optional
// OpenTelemetry tracing.
package wordladder
