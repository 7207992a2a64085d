/*
File    : loxgo/internal/config/config.go
Package : config

Package config loads optional REPL cosmetics (prompt text, banner,
color on/off) from a `.loxrc.yaml` file in the user's home directory.
It never affects language semantics: a missing or unparsable file
falls back to built-in defaults rather than failing the run, since
REPL cosmetics are never load-bearing for program correctness.
*/
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// REPL holds the subset of go-mix's main/main.go constants (BANNER,
// PROMPT, AUTHOR, LICENCE) that are user-overridable rather than
// baked into the binary.
type REPL struct {
	Prompt     string `yaml:"prompt"`
	Banner     string `yaml:"banner"`
	NoColor    bool   `yaml:"no_color"`
	HistoryLen int    `yaml:"history_len"`
}

// Default returns the built-in REPL cosmetics, used whenever no
// `.loxrc.yaml` is found or it fails to parse.
func Default() REPL {
	return REPL{
		Prompt:     "lox> ",
		Banner:     "Lox",
		NoColor:    false,
		HistoryLen: 1000,
	}
}

// Load reads `.loxrc.yaml` from the user's home directory, overlaying
// any fields it sets onto Default(). A missing file is not an error:
// it just means Default() is returned unchanged.
func Load() (REPL, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(home, ".loxrc.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
