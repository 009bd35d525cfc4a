package astar

// node is a search node stored in the engine arena.
type node struct {
	id     int    // arena index, equals creation order
	word   string // the word this node stands for
	parent int    // arena index of the predecessor, -1 for the root
	g      int    // substitutions from start
	h      int    // heuristic estimate to goal, fixed at creation
	index  int    // position in the frontier heap, -1 once popped
}

// f returns g + h.
func (n *node) f() int { return n.g + n.h }

// frontier is a min-heap of *node ordered by (f, h, id).
type frontier []*node

// Len returns the number of nodes waiting for expansion.
func (q frontier) Len() int { return len(q) }

// Less orders by f, then prefers nodes closer to the goal, then older nodes.
func (q frontier) Less(i, j int) bool {
	a, b := q[i], q[j]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.id < b.id
}

// Swap swaps two nodes and keeps their heap positions current.
func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x, which must be a *node.
func (q *frontier) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

// Pop removes the last element and marks it as off the heap.
func (q *frontier) Pop() interface{} {
	old := *q
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*q = old[:last]

	return n
}
