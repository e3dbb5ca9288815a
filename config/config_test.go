package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crillab/propeval/sat"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "propeval.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[parser]
grammar = "precedence"

[output]
verbose = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}
	if cfg.Parser.Grammar != GrammarPrecedence {
		t.Errorf("expected grammar %q, got %q", GrammarPrecedence, cfg.Parser.Grammar)
	}
	if cfg.Parser.MaxDepth != 1000 {
		t.Errorf("expected default max depth, got %d", cfg.Parser.MaxDepth)
	}
	if cfg.Solver.Backend != "gini" {
		t.Errorf("expected default backend, got %q", cfg.Solver.Backend)
	}
	if !cfg.Output.Verbose {
		t.Errorf("expected verbose output")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"[parser]\ngrammar = \"pratt\"\n":   "unknown grammar",
		"[solver]\nbackend = \"minisat\"\n": "unknown SAT backend",
		"[parser]\nmax_depth = -2\n":        "max_depth",
		"[parser]\ngrammer = \"legacy\"\n":  "unknown config key",
		"[parser\n":                         "failed to parse",
	}
	for content, want := range tests {
		_, err := Load(writeFile(t, content))
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("for %q, expected error containing %q, got %v", content, want, err)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadBackends(t *testing.T) {
	for _, b := range []sat.Backend{sat.Gini, sat.Gophersat} {
		cfg, err := Load(writeFile(t, "[solver]\nbackend = \""+b.String()+"\"\n"))
		if err != nil {
			t.Errorf("backend %v: could not load config: %v", b, err)
			continue
		}
		if got, _ := sat.ParseBackend(cfg.Solver.Backend); got != b {
			t.Errorf("backend %v: got %q", b, cfg.Solver.Backend)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	t.Setenv(EnvVar, "")
	cfg, err := Discover("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected the default config, got %+v", cfg)
	}

	path := writeFile(t, "[solver]\nbackend = \"gophersat\"\n")
	t.Setenv(EnvVar, path)
	cfg, err = Discover("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Solver.Backend != "gophersat" {
		t.Errorf("config from %s was not used", EnvVar)
	}

	if err := os.WriteFile(DefaultPath, []byte("[parser]\nmax_depth = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, "")
	cfg, err = Discover("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Parser.MaxDepth != 12 {
		t.Errorf("config from %s was not used", DefaultPath)
	}
}
