// Package bfs provides breadth-first search over a word-ladder graph,
// returning substitution counts, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing distance (substitutions) from a start word.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → distance from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - ShortestLadder stops as soon as the goal is discovered and returns the
//     ladder itself.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a word is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest ladders with no heuristic at all: every word closer
//     than the goal is explored. That makes it slow on big dictionaries but a
//     trustworthy reference for the A* solver, and a fallback when a custom
//     heuristic is suspect.
//
// Determinism
//
//	ladder.Graph yields neighbors position-major in alphabet order and BFS
//	enqueues them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = reachable words, n = word length, Σ = alphabet size)
//
//   - Time:   O(V·n·Σ)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	ladder, err := bfs.ShortestLadder(g, "cold", "warm")
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // unreachable
//	}
//
//	result, err := bfs.BFS(
//	    g, "cold",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(word string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrEmptyStart           if the start word is empty.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrLengthMismatch       if ShortestLadder gets words of different length.
//   - ErrNoPath               if the goal is unreachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
