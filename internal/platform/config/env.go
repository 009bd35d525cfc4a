// Package config holds the environment and exit helpers shared by the
// command entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from its `env` struct tags, recursing into nested
// structs. Flags are applied afterwards by the caller and win over env.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
