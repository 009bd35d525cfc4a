// Package wordladder implements the wordladder command: it reads a start and
// goal word, loads a dictionary and prints the shortest ladder between them.
package wordladder

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/wordladder/astar"
	"github.com/katalvlaran/wordladder/internal/platform/config"
	"github.com/katalvlaran/wordladder/internal/telemetry"
)

// Search algorithms accepted by -algo.
const (
	AlgorithmAStar = "astar"
	AlgorithmBFS   = "bfs"
)

// Config holds wordladder command configuration.
type Config struct {
	Dictionary    string        `env:"WORDLADDER_DICTIONARY"`
	Start         string        `env:"WORDLADDER_START"`
	Goal          string        `env:"WORDLADDER_GOAL"`
	Algorithm     string        `env:"WORDLADDER_ALGORITHM"      envDefault:"astar"`
	Policy        string        `env:"WORDLADDER_POLICY"         envDefault:"relax"`
	MaxExpansions int           `env:"WORDLADDER_MAX_EXPANSIONS"`
	Timeout       time.Duration `env:"WORDLADDER_TIMEOUT"`
	Lowercase     bool          `env:"WORDLADDER_LOWERCASE"`
	Verbose       bool          `env:"WORDLADDER_VERBOSE"`

	Telemetry telemetry.Config
}

// ParseConfig reads the environment, then lets flags and the single
// positional dictionary argument override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Start, "start", cfg.Start, "starting word (prompted when empty)")
	fs.StringVar(&cfg.Goal, "goal", cfg.Goal, "goal word (prompted when empty)")
	fs.StringVar(&cfg.Algorithm, "algo", cfg.Algorithm, "search algorithm: astar or bfs")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "A* parent policy: relax or first-writer")
	fs.IntVar(&cfg.MaxExpansions, "max-expansions", cfg.MaxExpansions, "A* expansion budget (0 = unlimited)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "search deadline (0 = none)")
	fs.BoolVar(&cfg.Lowercase, "lowercase", cfg.Lowercase, "fold dictionary and input words to lower case")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every expansion to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Dictionary = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected one dictionary path, got %d arguments", fs.NArg())
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Dictionary == "" {
		return errors.New("dictionary path is required")
	}
	switch c.Algorithm {
	case AlgorithmAStar, AlgorithmBFS:
	default:
		return fmt.Errorf("unknown algorithm %q (want astar or bfs)", c.Algorithm)
	}
	if _, err := astar.ParseParentPolicy(c.Policy); err != nil {
		return err
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max expansions cannot be negative (%d)", c.MaxExpansions)
	}
	return nil
}
