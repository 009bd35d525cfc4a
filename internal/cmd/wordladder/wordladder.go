package wordladder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordladder/astar"
	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/hamming"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
	"github.com/katalvlaran/wordladder/lexicon/sqlite"
)

const tracerName = "github.com/katalvlaran/wordladder/internal/cmd/wordladder"

// Run executes the wordladder command. Prompts and results go to out,
// diagnostics to errOut. Identical start and goal words end the run
// successfully without loading the dictionary.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	start, goal, err := readWords(cfg, bufio.NewReader(in), out)
	if err != nil {
		return err
	}
	if cfg.Lowercase {
		start, goal = lexicon.Fold(start), lexicon.Fold(goal)
	}

	if start == goal {
		fmt.Fprintln(out, "Both words are the same. No search needed.")
		return nil
	}
	initial, err := hamming.Distance(start, goal)
	if err != nil {
		return fmt.Errorf("mismatching word sizes: %w", err)
	}
	fmt.Fprintf(out, "Initial character-wise difference is: %d\n", initial)

	lx, err := loadDictionary(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Dictionary loaded. Proceeding with the search...")
	if cfg.Verbose {
		logger.Printf("dictionary: %d words from %s", lx.Len(), cfg.Dictionary)
	}

	g, err := ladder.New(lx)
	if err != nil {
		return err
	}
	path, err := search(ctx, cfg, g, start, goal, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Path found, total cost is: %d\n", len(path)-1)
	fmt.Fprintln(out, path)
	return nil
}

// readWords takes start and goal from cfg, prompting on in for any that are empty.
func readWords(cfg Config, in *bufio.Reader, out io.Writer) (start, goal string, err error) {
	start, goal = cfg.Start, cfg.Goal
	if start == "" {
		if start, err = prompt(in, out, "Please enter the starting word: "); err != nil {
			return "", "", fmt.Errorf("read starting word: %w", err)
		}
	}
	if goal == "" {
		if goal, err = prompt(in, out, "Please enter the goal word: "); err != nil {
			return "", "", fmt.Errorf("read goal word: %w", err)
		}
	}
	return start, goal, nil
}

func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("empty word")
	}
	return line, nil
}

// loadDictionary reads a text or SQLite dictionary inside a trace span.
func loadDictionary(ctx context.Context, cfg Config) (lx *lexicon.Lexicon, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "lexicon.load",
		trace.WithAttributes(attribute.String("dictionary.path", cfg.Dictionary)))
	defer func() { endSpan(span, err) }()

	var opts []lexicon.Option
	if cfg.Lowercase {
		opts = append(opts, lexicon.WithLowercase())
	}

	if sqlite.IsStorePath(cfg.Dictionary) {
		var store *sqlite.Store
		if store, err = sqlite.OpenReadOnly(cfg.Dictionary); err != nil {
			return nil, fmt.Errorf("%w: %w", lexicon.ErrDictionaryLoad, err)
		}
		defer store.Close()
		lx, err = store.Lexicon(ctx, opts...)
	} else {
		lx, err = lexicon.LoadFile(cfg.Dictionary, opts...)
	}
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("dictionary.words", lx.Len()))
	return lx, nil
}

// search runs the configured algorithm and returns the ladder.
func search(ctx context.Context, cfg Config, g *ladder.Graph, start, goal string, logger *log.Logger) (path []string, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ladder.search",
		trace.WithAttributes(
			attribute.String("search.algorithm", cfg.Algorithm),
			attribute.String("search.start", start),
			attribute.String("search.goal", goal),
		))
	defer func() { endSpan(span, err) }()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if cfg.Algorithm == AlgorithmBFS {
		return bfs.ShortestLadder(g, start, goal, bfs.WithContext(ctx))
	}

	policy, err := astar.ParseParentPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(cfg.MaxExpansions),
		astar.WithParentPolicy(policy),
	}
	if cfg.Verbose {
		opts = append(opts, astar.WithOnExpand(func(word string, g, h int) {
			logger.Printf("expand %s g=%d h=%d f=%d", word, g, h, g+h)
		}))
	}

	res, err := astar.Solve(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("search.expanded", res.Expanded),
		attribute.Int("search.generated", res.Generated),
	)
	if cfg.Verbose {
		logger.Printf("expanded %d nodes, generated %d", res.Expanded, res.Generated)
	}
	return res.Path, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
