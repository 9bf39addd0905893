// Package config holds the process configuration for the tableau CLI:
// the fresh-constant budget, color/trace/verify-model toggles. It is
// ambient plumbing (SPEC_FULL.md §4.6) — none of it changes classification
// or satisfiability semantics.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is populated, in order of increasing precedence, from defaults,
// an optional on-disk YAML file, and CLI flags — the same layering the
// teacher's MainConfig (go-tony/cmd/o/configs.go) gives its format/color
// options, generalized here from encode/parse options to engine tuning.
type Config struct {
	Input        string `cli:"name=input desc='path to the driver input file'" yaml:"input"`
	MaxConstants int    `cli:"name=max-constants desc='fresh witness constant budget'" yaml:"maxConstants"`
	Color        bool   `cli:"name=color desc='force colored output'" yaml:"color"`
	Trace        bool   `cli:"name=trace desc='log tableau engine steps'" yaml:"trace"`
	VerifyModel  bool   `cli:"name=verify-model desc='cross-check satisfying assignments with expr-lang'" yaml:"verifyModel"`
}

// FileName is the optional on-disk override this module looks for in the
// current directory, mirroring dirbuild's build-description file lookup.
const FileName = "tableau.config.yaml"

// Default returns the built-in configuration before any file or flag
// override is applied.
func Default() Config {
	return Config{
		Input:        "input.txt",
		MaxConstants: 10,
	}
}

// LoadFile merges the YAML file at path into cfg if it exists, returning
// cfg unchanged if it does not. Only fields present in the YAML file
// are overridden.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
