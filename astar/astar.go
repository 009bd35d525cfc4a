package astar

import (
	"container/heap"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/ladder"
)

// Engine holds the mutable state of a single search. It is not safe for
// concurrent use; independent engines may share one graph.
type Engine struct {
	graph Expander
	start string
	goal  string
	opts  Options

	state  State
	nodes  []*node          // arena, indexed by creation order
	byWord map[string]*node // one node per word ever created
	seen   ladder.WordSet   // words with a node; exclude set under FirstWriter
	closed ladder.WordSet   // expanded words
	open   frontier

	expanded int
	result   *Result
	err      error
}

// Solve searches for the shortest ladder from start to goal over g.
// If start equals goal the ladder is just [start] with cost 0 and no search
// is run. Differing lengths yield ErrLengthMismatch before any search.
func Solve(g Expander, start, goal string, opts ...Option) (*Result, error) {
	if start != "" && start == goal {
		return &Result{Path: []string{start}}, nil
	}
	e, err := New(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// New validates the inputs and returns an Engine in the Ready state with
// the start node on the frontier.
//
// Preconditions (in order):
//  1. g is non-nil (ErrNilGraph).
//  2. start and goal are non-empty (ErrEmptyWord).
//  3. start and goal have the same length (ErrLengthMismatch).
//  4. every Option is valid (ErrOptionViolation).
func New(g Expander, start, goal string, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" || goal == "" {
		return nil, ErrEmptyWord
	}
	if ls, lg := utf8.RuneCountInString(start), utf8.RuneCountInString(goal); ls != lg {
		return nil, fmt.Errorf("%w: start %q has %d letters, goal %q has %d", ErrLengthMismatch, start, ls, goal, lg)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h, err := o.Heuristic(start, goal)
	if err != nil {
		return nil, fmt.Errorf("astar: heuristic for start %q: %w", start, err)
	}

	e := &Engine{
		graph:  g,
		start:  start,
		goal:   goal,
		opts:   o,
		state:  Ready,
		byWord: make(map[string]*node),
		seen:   make(ladder.WordSet),
		closed: make(ladder.WordSet),
	}
	heap.Init(&e.open)
	e.create(start, -1, 0, h)

	return e, nil
}

// State returns the current lifecycle stage.
func (e *Engine) State() State { return e.state }

// Frontier returns the number of nodes awaiting expansion.
func (e *Engine) Frontier() int { return e.open.Len() }

// Visited returns the number of expanded words.
func (e *Engine) Visited() int { return e.closed.Len() }

// Run steps the engine until it succeeds or fails.
func (e *Engine) Run() (*Result, error) {
	for {
		done, err := e.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return e.result, nil
		}
	}
}

// Step performs one iteration: pop the best frontier node, finish if it is
// the goal, otherwise expand it. It returns done once the engine reached
// Succeeded or Failed; further calls repeat the final outcome.
func (e *Engine) Step() (done bool, err error) {
	switch e.state {
	case Succeeded:
		return true, nil
	case Failed:
		return true, e.err
	case Ready:
		e.state = Running
	}

	// cancellation check (once per step)
	select {
	case <-e.opts.Ctx.Done():
		return true, e.fail(e.opts.Ctx.Err())
	default:
	}

	if e.open.Len() == 0 {
		return true, e.fail(fmt.Errorf("%w: from %q to %q", ErrNoPath, e.start, e.goal))
	}

	cur := heap.Pop(&e.open).(*node)
	if cur.word == e.goal {
		e.succeed(cur)
		return true, nil
	}
	if e.opts.MaxExpansions > 0 && e.expanded >= e.opts.MaxExpansions {
		return true, e.fail(fmt.Errorf("%w: %d nodes expanded searching %q to %q",
			ErrBudgetExceeded, e.expanded, e.start, e.goal))
	}

	e.closed.Add(cur.word)
	e.expanded++
	e.opts.OnExpand(cur.word, cur.g, cur.h)

	if err := e.expand(cur); err != nil {
		return true, e.fail(err)
	}
	return false, nil
}

// expand creates nodes for the unseen neighbors of cur and, under Relax,
// re-parents frontier nodes that cur reaches more cheaply.
func (e *Engine) expand(cur *node) error {
	var neighbors []string
	if e.opts.Policy == FirstWriter {
		if d, ok := e.graph.(Discoverer); ok {
			neighbors = d.Discover(cur.word, e.seen)
		} else {
			neighbors = e.graph.Neighbors(cur.word, e.seen)
		}
	} else {
		neighbors = e.graph.Neighbors(cur.word, e.closed)
	}

	g := cur.g + 1
	for _, w := range neighbors {
		if n, ok := e.byWord[w]; ok {
			if n.index >= 0 && g < n.g {
				n.g = g
				n.parent = cur.id
				heap.Fix(&e.open, n.index)
			}
			continue
		}
		h, err := e.opts.Heuristic(w, e.goal)
		if err != nil {
			return fmt.Errorf("astar: heuristic for %q: %w", w, err)
		}
		e.create(w, cur.id, g, h)
		e.opts.OnGenerate(w, g, h)
	}
	return nil
}

// create allocates a node in the arena, registers it as seen and pushes it
// onto the frontier.
func (e *Engine) create(word string, parent, g, h int) {
	n := &node{id: len(e.nodes), word: word, parent: parent, g: g, h: h}
	e.nodes = append(e.nodes, n)
	e.byWord[word] = n
	e.seen.Add(word)
	heap.Push(&e.open, n)
}

// succeed walks parent indices from the goal node back to the root and
// stores the reversed ladder.
func (e *Engine) succeed(goal *node) {
	path := make([]string, 0, goal.g+1)
	for id := goal.id; id >= 0; id = e.nodes[id].parent {
		path = append(path, e.nodes[id].word)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	e.state = Succeeded
	// g rather than f: a custom heuristic need not return 0 at the goal
	e.result = &Result{
		Path:      path,
		Cost:      goal.g,
		Expanded:  e.expanded,
		Generated: len(e.nodes),
	}
}

func (e *Engine) fail(err error) error {
	e.state = Failed
	e.err = err
	return err
}
