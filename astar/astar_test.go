package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/astar"
	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

// catDog is the six-word dictionary from the package documentation.
const catDog = "cat cot cog dog dot cag"

// newGraph builds a ladder graph over a whitespace-separated word list.
func newGraph(t testing.TB, words string, opts ...ladder.Option) *ladder.Graph {
	t.Helper()
	lx, err := lexicon.New(strings.Fields(words))
	require.NoError(t, err)
	g, err := ladder.New(lx, opts...)
	require.NoError(t, err)
	return g
}

// adjGraph is a hand-wired directed graph for exercising parent policies
// with heuristics that a real dictionary could not produce.
type adjGraph map[string][]string

func (a adjGraph) Neighbors(w string, exclude ladder.WordSet) []string {
	var out []string
	for _, n := range a[w] {
		if !exclude.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// tableHeuristic returns fixed estimates per word.
func tableHeuristic(h map[string]int) astar.Heuristic {
	return func(w, _ string) (int, error) { return h[w], nil }
}

func TestSolve_CatDog(t *testing.T) {
	res, err := astar.Solve(newGraph(t, catDog), "cat", "dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "dot", "dog"}, res.Path)
	assert.Equal(t, 3, res.Cost)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, 6, res.Generated)
}

func TestSolve_FirstWriterCatDog(t *testing.T) {
	res, err := astar.Solve(newGraph(t, catDog), "cat", "dog", astar.WithParentPolicy(astar.FirstWriter))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "dot", "dog"}, res.Path)
	assert.Equal(t, 3, res.Cost)
}

func TestSolve_Trivial(t *testing.T) {
	var calls int
	res, err := astar.Solve(newGraph(t, catDog), "cat", "cat",
		astar.WithOnExpand(func(string, int, int) { calls++ }))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Zero(t, calls, "no search for identical words")
}

func TestSolve_LengthMismatch(t *testing.T) {
	_, err := astar.Solve(newGraph(t, catDog), "cat", "dogs")
	require.ErrorIs(t, err, astar.ErrLengthMismatch)
	assert.Contains(t, err.Error(), `"dogs"`)
}

func TestSolve_NoPath(t *testing.T) {
	_, err := astar.Solve(newGraph(t, catDog+" emu"), "cat", "emu")
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Contains(t, err.Error(), `"cat"`)
	assert.Contains(t, err.Error(), `"emu"`)

	// goal missing from the dictionary is unreachable too
	_, err = astar.Solve(newGraph(t, catDog), "cat", "cut")
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSolve_StartOutsideDictionary(t *testing.T) {
	res, err := astar.Solve(newGraph(t, "cot dot dog"), "cat", "dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "dot", "dog"}, res.Path)
}

func TestNew_Errors(t *testing.T) {
	g := newGraph(t, catDog)

	_, err := astar.New(nil, "cat", "dog")
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.New(g, "", "dog")
	assert.ErrorIs(t, err, astar.ErrEmptyWord)

	_, err = astar.New(g, "cat", "")
	assert.ErrorIs(t, err, astar.ErrEmptyWord)

	_, err = astar.New(g, "cat", "do")
	assert.ErrorIs(t, err, astar.ErrLengthMismatch)

	_, err = astar.New(g, "cat", "dog", astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.New(g, "cat", "dog", astar.WithParentPolicy(astar.ParentPolicy(7)))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

func TestEngine_StateMachine(t *testing.T) {
	e, err := astar.New(newGraph(t, catDog), "cat", "dog")
	require.NoError(t, err)
	assert.Equal(t, astar.Ready, e.State())
	assert.Equal(t, 1, e.Frontier())
	assert.Zero(t, e.Visited())

	done, err := e.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, astar.Running, e.State())
	assert.Equal(t, 1, e.Visited())
	assert.Equal(t, 2, e.Frontier(), "cot and cag")

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, astar.Succeeded, e.State())
	assert.Equal(t, 3, res.Cost)

	// finished engines keep reporting their outcome
	done, err = e.Step()
	assert.True(t, done)
	assert.NoError(t, err)
}

func TestEngine_FailedIsSticky(t *testing.T) {
	e, err := astar.New(newGraph(t, "cat emu"), "cat", "emu")
	require.NoError(t, err)

	_, err = e.Run()
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Equal(t, astar.Failed, e.State())

	done, again := e.Step()
	assert.True(t, done)
	assert.Equal(t, err, again)
}

func TestEngine_StartEqualsGoal(t *testing.T) {
	e, err := astar.New(newGraph(t, catDog), "cat", "cat")
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, res.Path)
	assert.Zero(t, res.Expanded)
}

func TestWithMaxExpansions(t *testing.T) {
	g := newGraph(t, catDog)

	_, err := astar.Solve(g, "cat", "dog", astar.WithMaxExpansions(1))
	require.ErrorIs(t, err, astar.ErrBudgetExceeded)

	// three expansions (cat, cot, dot) are exactly enough
	res, err := astar.Solve(g, "cat", "dog", astar.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)
}

func TestWithContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, err := astar.New(newGraph(t, catDog), "cat", "dog", astar.WithContext(ctx))
	require.NoError(t, err)
	_, err = e.Run()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.Failed, e.State())
}

func TestHooks(t *testing.T) {
	var expanded, generated []string
	_, err := astar.Solve(newGraph(t, catDog), "cat", "dog",
		astar.WithOnExpand(func(w string, _, _ int) { expanded = append(expanded, w) }),
		astar.WithOnGenerate(func(w string, _, _ int) { generated = append(generated, w) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "dot"}, expanded)
	assert.Equal(t, []string{"cot", "cag", "dot", "cog", "dog"}, generated)
}

func TestHeuristicError(t *testing.T) {
	g := adjGraph{"ab": {"abc"}}
	_, err := astar.Solve(g, "ab", "cd")
	require.ErrorIs(t, err, astar.ErrLengthMismatch)
	assert.Contains(t, err.Error(), `"abc"`)
}

// TestParentPolicies uses a graph where the cheaper route to C is found
// only after C is already on the frontier:
//
//	S → A → C → G      (A looks expensive)
//	S → B → D → C      (B, D look cheap)
func TestParentPolicies(t *testing.T) {
	g := adjGraph{
		"S": {"A", "B"},
		"A": {"C"},
		"B": {"D"},
		"D": {"C"},
		"C": {"G"},
	}
	h := tableHeuristic(map[string]int{"A": 5, "C": 4})

	res, err := astar.Solve(g, "S", "G", astar.WithHeuristic(h))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "C", "G"}, res.Path, "relax re-parents C under A")
	assert.Equal(t, 3, res.Cost)

	res, err = astar.Solve(g, "S", "G", astar.WithHeuristic(h), astar.WithParentPolicy(astar.FirstWriter))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "D", "C", "G"}, res.Path, "first writer keeps C under D")
	assert.Equal(t, 4, res.Cost)
}

// TestSolve_MatchesBFS compares A* against brute-force BFS on random
// dictionaries of three-letter words over a four-letter alphabet.
func TestSolve_MatchesBFS(t *testing.T) {
	const alphabet = "abcd"
	rnd := rand.New(rand.NewSource(7))

	var all []string
	for _, x := range alphabet {
		for _, y := range alphabet {
			for _, z := range alphabet {
				all = append(all, string([]rune{x, y, z}))
			}
		}
	}

	for round := 0; round < 20; round++ {
		var words []string
		for _, w := range all {
			if rnd.Float64() < 0.35 {
				words = append(words, w)
			}
		}
		if len(words) < 2 {
			continue
		}
		g := newGraph(t, strings.Join(words, " "), ladder.WithAlphabet(alphabet))

		for pair := 0; pair < 15; pair++ {
			start := words[rnd.Intn(len(words))]
			goal := words[rnd.Intn(len(words))]

			want, bfsErr := bfs.ShortestLadder(g, start, goal)
			for _, policy := range []astar.ParentPolicy{astar.Relax, astar.FirstWriter} {
				got, err := astar.Solve(g, start, goal, astar.WithParentPolicy(policy))
				if bfsErr != nil {
					require.ErrorIs(t, bfsErr, bfs.ErrNoPath)
					assert.ErrorIs(t, err, astar.ErrNoPath, "%s→%s (%s)", start, goal, policy)
					continue
				}
				require.NoError(t, err, "%s→%s (%s)", start, goal, policy)

				assert.Equal(t, start, got.Path[0])
				assert.Equal(t, goal, got.Path[len(got.Path)-1])
				assert.Equal(t, len(got.Path)-1, got.Cost)
				assert.NoError(t, g.Validate(got.Path))
				if policy == astar.Relax {
					assert.Equal(t, len(want)-1, got.Cost, "%s→%s not optimal", start, goal)
				} else {
					assert.GreaterOrEqual(t, got.Cost, len(want)-1)
				}
			}
		}
	}
}

func TestParseParentPolicy(t *testing.T) {
	p, err := astar.ParseParentPolicy("first-writer")
	require.NoError(t, err)
	assert.Equal(t, astar.FirstWriter, p)
	assert.Equal(t, "first-writer", p.String())

	p, err = astar.ParseParentPolicy("")
	require.NoError(t, err)
	assert.Equal(t, astar.Relax, p)

	_, err = astar.ParseParentPolicy("greedy")
	assert.True(t, errors.Is(err, astar.ErrOptionViolation))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ready", astar.Ready.String())
	assert.Equal(t, "running", astar.Running.String())
	assert.Equal(t, "succeeded", astar.Succeeded.String())
	assert.Equal(t, "failed", astar.Failed.String())
	assert.Equal(t, "State(9)", astar.State(9).String())
}
