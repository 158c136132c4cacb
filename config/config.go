// Package config reads the optional runtime settings from the
// environment. Everything has a working default; the dice themselves
// always come from the command line.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/OlimovAlibek/iTransition/fairness"
)

// Opponent die-selection policies.
const (
	PolicyUniform = "uniform"
	PolicyGreedy  = "greedy"
)

type Config struct {
	// OpponentPolicy selects how the computer picks its die:
	// "uniform" (default) or "greedy".
	OpponentPolicy string `env:"FAIRDICE_OPPONENT" envDefault:"uniform"`
	// KeySize is the commitment key length in bytes, minimum 32.
	KeySize int `env:"FAIRDICE_KEY_BYTES" envDefault:"32"`
	// NoColor disables colored terminal output.
	NoColor bool `env:"FAIRDICE_NO_COLOR" envDefault:"false"`
	// Debug raises the log level to debug.
	Debug bool `env:"FAIRDICE_DEBUG" envDefault:"false"`
	// ShowTranscript prints the verified round transcript at game end.
	ShowTranscript bool `env:"FAIRDICE_TRANSCRIPT" envDefault:"false"`
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.OpponentPolicy != PolicyUniform && cfg.OpponentPolicy != PolicyGreedy {
		return Config{}, fmt.Errorf("config: unknown opponent policy %q", cfg.OpponentPolicy)
	}
	if cfg.KeySize < fairness.MinKeySize {
		return Config{}, fmt.Errorf("config: key size %d below minimum %d", cfg.KeySize, fairness.MinKeySize)
	}
	return cfg, nil
}
