package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/hamming"
	"github.com/katalvlaran/wordladder/ladder"
)

// Sentinel errors returned by BFS and ShortestLadder.
var (
	// ErrEmptyStart is returned when the start word is empty.
	ErrEmptyStart = errors.New("bfs: start word is empty")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by ShortestLadder when the goal is unreachable.
	ErrNoPath = errors.New("bfs: no path found")

	// ErrLengthMismatch is returned by ShortestLadder when start and goal
	// differ in length. It is the same sentinel as hamming.ErrLengthMismatch.
	ErrLengthMismatch = hamming.ErrLengthMismatch
)

// Neighborer yields the neighbors of a word, skipping those in exclude.
// *ladder.Graph satisfies it.
type Neighborer interface {
	Neighbors(word string, exclude ladder.WordSet) []string
}

// Option adjusts a BFSOptions value. Invalid arguments are remembered and
// reported as ErrOptionViolation once BFS or ShortestLadder starts.
type Option func(*BFSOptions)

// BFSOptions controls one breadth-first walk over a ladder graph.
type BFSOptions struct {
	// Ctx is polled once per dequeued word.
	Ctx context.Context

	// OnEnqueue sees each word as it joins the queue, with its rung number.
	OnEnqueue func(word string, depth int)

	// OnDequeue sees each word right before it is visited.
	OnDequeue func(word string, depth int)

	// OnVisit may abort the walk by returning an error.
	OnVisit func(word string, depth int) error

	// MaxDepth caps the number of substitutions from the start; 0 means no cap.
	MaxDepth int

	// FilterNeighbor vetoes single substitutions curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns options for an unbounded, unfiltered walk with
// no-op hooks under context.Background().
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext sets the context polled by the walk. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the enqueue hook.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the dequeue hook.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook; its first error ends the walk.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to ladders of at most d substitutions.
// Zero removes the limit; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult records a finished walk. Order lists words in visit sequence,
// Depth maps every reached word to its rung, and Parent maps every reached
// word except the start to the word it was discovered from.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo follows Parent links back from dest and returns the ladder
// start→dest. Unreached words yield an error wrapping ErrNoPath.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
