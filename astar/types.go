package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/hamming"
	"github.com/katalvlaran/wordladder/ladder"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGraph is returned when a nil Expander is supplied.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrEmptyWord is returned when the start or goal word is empty.
	ErrEmptyWord = errors.New("astar: start and goal words must be non-empty")

	// ErrLengthMismatch is returned when start and goal differ in length.
	// It is the same sentinel as hamming.ErrLengthMismatch.
	ErrLengthMismatch = hamming.ErrLengthMismatch

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoPath is returned when no ladder connects start and goal.
	ErrNoPath = errors.New("astar: no path found")

	// ErrBudgetExceeded is returned when MaxExpansions nodes were expanded
	// without reaching the goal.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Expander yields the neighbors of a word, skipping those in exclude.
// *ladder.Graph satisfies it.
type Expander interface {
	Neighbors(word string, exclude ladder.WordSet) []string
}

// Discoverer is an Expander that can also register the words it returns
// into seen. When the graph implements it, the FirstWriter policy uses
// Discover so generation and registration happen in one step.
type Discoverer interface {
	Expander
	Discover(word string, seen ladder.WordSet) []string
}

// Heuristic estimates the number of substitutions left from word to goal.
type Heuristic func(word, goal string) (int, error)

// State is the lifecycle stage of an Engine.
type State int

const (
	// Ready means the engine is seeded but has not expanded anything.
	Ready State = iota
	// Running means at least one step was taken and the search is not over.
	Running
	// Succeeded means the goal was reached; Result holds the ladder.
	Succeeded
	// Failed means the search ended without a ladder.
	Failed
)

// String returns the lowercase name of s.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParentPolicy decides what happens when a cheaper path reaches a word
// that already has a node.
type ParentPolicy int

const (
	// Relax re-parents frontier nodes reached by a strictly cheaper path.
	Relax ParentPolicy = iota
	// FirstWriter keeps the parent a node was created with.
	FirstWriter
)

// String returns the flag spelling of p.
func (p ParentPolicy) String() string {
	switch p {
	case Relax:
		return "relax"
	case FirstWriter:
		return "first-writer"
	default:
		return fmt.Sprintf("ParentPolicy(%d)", int(p))
	}
}

// ParseParentPolicy maps "relax" and "first-writer" to a ParentPolicy.
func ParseParentPolicy(s string) (ParentPolicy, error) {
	switch s {
	case "relax", "":
		return Relax, nil
	case "first-writer", "firstwriter":
		return FirstWriter, nil
	}
	return 0, fmt.Errorf("%w: unknown parent policy %q", ErrOptionViolation, s)
}

// Result is the outcome of a successful search.
type Result struct {
	// Path is the ladder from start to goal, both inclusive.
	Path []string
	// Cost is the number of substitutions, len(Path)-1.
	Cost int
	// Expanded counts nodes whose neighbors were generated.
	Expanded int
	// Generated counts nodes created, the start node included.
	Generated int
}

// Option configures the search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of expanded nodes.
	MaxExpansions int

	// Policy selects Relax or FirstWriter.
	Policy ParentPolicy

	// Heuristic estimates remaining cost; defaults to hamming.Distance.
	Heuristic Heuristic

	// OnExpand is called when a node is expanded.
	OnExpand func(word string, g, h int)

	// OnGenerate is called when a node is created.
	OnGenerate func(word string, g, h int)

	err error
}

// DefaultOptions returns background context, no budget, Relax policy,
// Hamming heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Policy:     Relax,
		Heuristic:  hamming.Distance,
		OnExpand:   func(string, int, int) {},
		OnGenerate: func(string, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithParentPolicy selects how already-created nodes are treated.
func WithParentPolicy(p ParentPolicy) Option {
	return func(o *Options) {
		if p != Relax && p != FirstWriter {
			o.err = fmt.Errorf("%w: unknown parent policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithHeuristic replaces the Hamming heuristic. It must never overestimate
// for the returned ladder to be shortest.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(word string, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback run for every created node.
func WithOnGenerate(fn func(word string, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}
