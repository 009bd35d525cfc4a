// Package astar finds shortest word ladders with a best-first (A*) search
// over a ladder.Graph, guided by the Hamming distance to the goal word.
//
// What
//
//   - Solve validates a start/goal pair and returns the cheapest ladder,
//     its cost (number of substitutions) and search statistics.
//   - Engine exposes the search as a state machine
//     (Ready → Running → Succeeded | Failed) that can be driven one
//     expansion at a time with Step, or to completion with Run.
//
// How
//
//	Every discovered word gets exactly one search node, stored in an arena
//	indexed by creation order. A node's parent is an index into that arena,
//	never an owning pointer. The frontier is a binary heap ordered by
//	f = g + h, then by lower h (closer to the goal), then by creation order,
//	so the returned ladder is fully reproducible.
//
// Parent policy
//
//   - Relax (default): when a strictly shorter path reaches a word that is
//     still on the frontier, its node is re-parented in place and the heap
//     fixed. With a consistent heuristic this keeps A* optimal.
//   - FirstWriter: a node keeps the parent and cost it was created with.
//     Neighbors are requested excluding every word ever seen, as in the
//     classic formulation. Cheaper, but may return a longer ladder on
//     adversarial dictionaries.
//
// Complexity (V = words reached, n = word length, Σ = alphabet size)
//
//   - Time:   O(V·n·Σ + V log V)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):           cancel a running search.
//   - WithMaxExpansions(n):       fail with ErrBudgetExceeded after n expansions.
//   - WithParentPolicy(p):        Relax or FirstWriter.
//   - WithHeuristic(fn):          replace hamming.Distance.
//   - WithOnExpand(fn):           hook called for every expanded node.
//   - WithOnGenerate(fn):         hook called for every newly created node.
//
// Errors
//
//   - ErrNilGraph          if the graph is nil.
//   - ErrEmptyWord         if start or goal is empty.
//   - ErrLengthMismatch    if start and goal differ in length (no search runs).
//   - ErrOptionViolation   if an invalid Option is supplied.
//   - ErrNoPath            if the frontier empties before the goal is reached.
//   - ErrBudgetExceeded    if MaxExpansions is reached.
//   - context errors       if the context is cancelled.
package astar
