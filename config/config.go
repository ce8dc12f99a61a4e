// Package config loads host configuration. Display behavior that the
// original framework read from process-wide toggles is explicit here and
// passed into the rendering hosts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configure the terminal hosts.
type Options struct {
	Plain   bool   `yaml:"plain"`    // line-mode CLI instead of the full-screen TUI
	NoColor bool   `yaml:"no_color"` // suppress ANSI styling
	Prompt  string `yaml:"prompt"`
}

// Default returns the options used when no config file is present.
func Default() Options {
	return Options{Prompt: "> "}
}

// Load reads options from a YAML file, filling gaps with defaults.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	return opts, nil
}
