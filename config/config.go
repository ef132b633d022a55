// Package config loads the TOML-sourced tunables (§4.9) that parameterize
// search and evaluation, falling back to the spec's built-in defaults when
// no file is supplied.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"bitbucket.org/zurichess/corechess/engine"
)

// Config holds every tunable the engine and evaluation read instead of
// hardcoded literals.
type Config struct {
	MaxDepth   int    `toml:"max_depth"`
	NodeBudget uint64 `toml:"node_budget"`

	EndgameThreshold      float64 `toml:"endgame_threshold"`
	DoubledPawnPenalty    int16   `toml:"doubled_pawn_penalty"`
	IsolatedPawnPenalty   int16   `toml:"isolated_pawn_penalty"`
	PassedPawnCoefficient int16   `toml:"passed_pawn_coefficient"`
}

// Default returns the built-in tunables matching spec §4.5/§4.6.
func Default() Config {
	return Config{
		MaxDepth:              32,
		NodeBudget:            2_000_000,
		EndgameThreshold:      1.0 / 3.0,
		DoubledPawnPenalty:    20,
		IsolatedPawnPenalty:   4,
		PassedPawnCoefficient: 2,
	}
}

// Load reads path as TOML, starting from Default() so a partial file only
// overrides the fields it names. A missing path is not an error; Default()
// is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Apply pushes cfg's evaluation tunables into the engine package's package
// level variables, read by Board.IsEndGame and the pawn-structure terms.
func Apply(cfg Config) {
	engine.SetTunables(cfg.EndgameThreshold, cfg.DoubledPawnPenalty, cfg.IsolatedPawnPenalty, cfg.PassedPawnCoefficient)
}
