// Package bfs provides breadth-first search over a ladder graph,
// returning substitution counts, parent links, and visit order.
//
// BFS explores words in increasing distance from a start word,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/ladder"
)

// queueItem pairs a word with its BFS depth and its parent word.
type queueItem struct {
	word   string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Neighborer
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited ladder.WordSet
	target  string // stop once enqueued; empty for a full traversal
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrEmptyStart for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g Neighborer, start string, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.loop()
}

// ShortestLadder returns a shortest ladder from start to goal, both
// inclusive, by plain breadth-first search. It explores every word up to
// the goal's depth and serves as the reference answer for A*.
// Returns ErrLengthMismatch if the words differ in length and ErrNoPath if
// the goal cannot be reached.
func ShortestLadder(g Neighborer, start, goal string, opts ...Option) ([]string, error) {
	if ls, lg := utf8.RuneCountInString(start), utf8.RuneCountInString(goal); ls != lg {
		return nil, fmt.Errorf("%w: start %q has %d letters, goal %q has %d", ErrLengthMismatch, start, ls, goal, lg)
	}
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	w.target = goal
	if err := w.loop(); err != nil {
		return nil, err
	}
	path, err := w.res.PathTo(goal)
	if err != nil {
		return nil, fmt.Errorf("bfs: from %q: %w", start, err)
	}
	return path, nil
}

func newWalker(g Neighborer, start string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == "" {
		return nil, ErrEmptyStart
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(ladder.WordSet),
		res: &BFSResult{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start word (no parent)
	w.enqueue(start, 0, "")
	return w, nil
}

// enqueue marks word visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited.Add(word)
	w.res.Depth[word] = d
	if parent != "" {
		w.res.Parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d, parent: parent})
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.target != "" && w.visited.Has(w.target) {
			return nil
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.word, item.depth)
	return item
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
	}
	return nil
}

// enqueueNeighbors retrieves unvisited neighbors, applies filtering and
// MaxDepth, and enqueues each of them.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.word, w.visited) {
		if !w.opts.FilterNeighbor(item.word, nbr) {
			continue
		}
		// the exclude set only covers words visited before this call
		if !w.visited.Has(nbr) {
			w.enqueue(nbr, nextDepth, item.word)
		}
	}
}
