package config

import (
	"os"
	"pursuit/meta"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the run settings. Flags override it, it overrides the defaults in meta.
type Config struct {
	Layout          string // Built-in layout name
	LayoutFile      string // Layout file, takes precedence over Layout
	MaxDepth        int
	Evaluation      string // "baseline" or "tour"
	Adversary       string // "greedy" or "random"
	Seed            uint64
	Games           int
	MaxTurns        int
	HistoryCapacity int
	LogLevel        string
	OutputDir       string // Empty disables CSV records
	DotFile         string // Empty disables graph export
	ServeAddr       string // Non-empty serves the agent over HTTP instead of playing
	AgentURL        string // Non-empty plays with the agent server at this URL
	Experiment      string // Non-empty runs a named experiment instead of playing
}

func Default() Config {
	return Config{
		Layout:          "medium",
		MaxDepth:        meta.MaxDepth,
		Evaluation:      "tour",
		Adversary:       "greedy",
		Seed:            1,
		Games:           1,
		MaxTurns:        meta.MaxTurns,
		HistoryCapacity: meta.HistoryCapacity,
		LogLevel:        "info",
	}
}

// Load reads PURSUIT_* variables, from the environment or the given .env files.
// Missing .env files are ignored.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	c := Default()
	var err error
	str(&c.Layout, "PURSUIT_LAYOUT")
	str(&c.LayoutFile, "PURSUIT_LAYOUT_FILE")
	str(&c.Evaluation, "PURSUIT_EVALUATION")
	str(&c.Adversary, "PURSUIT_ADVERSARY")
	str(&c.LogLevel, "PURSUIT_LOG_LEVEL")
	str(&c.OutputDir, "PURSUIT_OUTPUT_DIR")
	str(&c.DotFile, "PURSUIT_DOT_FILE")
	str(&c.ServeAddr, "PURSUIT_SERVE_ADDR")
	str(&c.AgentURL, "PURSUIT_AGENT_URL")
	str(&c.Experiment, "PURSUIT_EXPERIMENT")
	if err = integer(&c.MaxDepth, "PURSUIT_MAX_DEPTH"); err != nil {
		return Config{}, err
	}
	if err = integer(&c.Games, "PURSUIT_GAMES"); err != nil {
		return Config{}, err
	}
	if err = integer(&c.MaxTurns, "PURSUIT_MAX_TURNS"); err != nil {
		return Config{}, err
	}
	if err = integer(&c.HistoryCapacity, "PURSUIT_HISTORY_CAPACITY"); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("PURSUIT_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid PURSUIT_SEED")
		}
		c.Seed = seed
	}

	return c, c.Validate()
}

// Validate checks values the environment or flags may have set wrong.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Evaluation != "baseline" && c.Evaluation != "tour" {
		return errors.Errorf("unknown evaluation %q", c.Evaluation)
	}
	if c.Adversary != "greedy" && c.Adversary != "random" {
		return errors.Errorf("unknown adversary %q", c.Adversary)
	}
	if c.Games <= 0 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxTurns <= 0 {
		return errors.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if c.Experiment != "" && c.Experiment != "depth" {
		return errors.Errorf("unknown experiment %q", c.Experiment)
	}
	if c.ServeAddr != "" && c.AgentURL != "" {
		return errors.New("cannot serve an agent and play against a remote one at once")
	}
	if c.HistoryCapacity < 0 {
		return errors.Errorf("history capacity must not be negative, got %d", c.HistoryCapacity)
	}
	return nil
}

func str(target *string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		*target = v
	}
}

func integer(target *int, name string) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", name)
	}
	*target = n
	return nil
}
