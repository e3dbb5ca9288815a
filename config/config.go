// Package config loads the settings of the propeval command from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/crillab/propeval/prop"
	"github.com/crillab/propeval/sat"
)

// EnvVar names the environment variable holding the path of the config file.
const EnvVar = "PROPEVAL_CONFIG"

// DefaultPath is the config file looked for in the working directory.
const DefaultPath = "propeval.toml"

// Grammar names.
const (
	GrammarLegacy     = "legacy"
	GrammarPrecedence = "precedence"
)

// Config holds the complete configuration.
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
}

// ParserConfig selects how formulas are read.
type ParserConfig struct {
	Grammar  string `toml:"grammar"`
	MaxDepth int    `toml:"max_depth"`
}

// SolverConfig selects the SAT backend used by the check command.
type SolverConfig struct {
	Backend string `toml:"backend"`
}

// OutputConfig holds display settings.
type OutputConfig struct {
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover loads the config file at path if it is not empty, else the one named by PROPEVAL_CONFIG,
// else ./propeval.toml. When none of them is set or exists, the default configuration is returned.
func Discover(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if path = os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Parser.Grammar == "" {
		c.Parser.Grammar = GrammarLegacy
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = prop.DefaultMaxDepth
	}
	if c.Solver.Backend == "" {
		c.Solver.Backend = sat.Gini.String()
	}
}

// Validate checks that names refer to known grammars and backends.
func (c *Config) Validate() error {
	switch c.Parser.Grammar {
	case GrammarLegacy, GrammarPrecedence:
	default:
		return fmt.Errorf("unknown grammar %q", c.Parser.Grammar)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.Parser.MaxDepth)
	}
	_, err := sat.ParseBackend(c.Solver.Backend)
	return err
}
