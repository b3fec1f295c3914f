// Package config loads the jung CLI's optional .jungrc.yaml file:
// interpreter bounds and REPL defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the interpreter and REPL consult. Zero
// values are never used directly; Default supplies the baseline that
// Load starts from before a file (if any) overrides it.
type Config struct {
	// CallDepthLimit bounds recursive user function calls (spec §3.4's
	// call-depth counter); exceeding it is a runtime "stack overflow".
	CallDepthLimit int `yaml:"call_depth_limit"`
	// MaxImports bounds the number of distinct files an `import`
	// chain may pull in (spec §4.5's recommended 32-64 bound).
	MaxImports int `yaml:"max_imports"`
	// ReplPrompt is the line prompt shown by the interactive REPL.
	ReplPrompt string `yaml:"repl_prompt"`
	// ReplEcho controls whether a bare expression statement's result
	// is printed by the REPL (spec §6's REPL contract).
	ReplEcho bool `yaml:"repl_echo"`
}

// Default returns the built-in baseline configuration.
func Default() Config {
	return Config{
		CallDepthLimit: 200,
		MaxImports:     64,
		ReplPrompt:     "jung> ",
		ReplEcho:       true,
	}
}

// Load reads path as YAML and overlays it onto Default(). A missing
// file is not an error — the defaults are returned unchanged. A
// malformed file is fatal: the caller should treat a non-nil error as
// unrecoverable, matching the language's "no recovery" error posture
// for configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
