// Package config loads the optional ssx options file.
package config

import (
	"fmt"
	"os"

	"github.com/hickst/ssx/internal/endnote"
	"gopkg.in/yaml.v3"
)

// Options holds the tunable extraction and output settings. The zero-valued
// fields of a loaded file fall back to the defaults, so a minimal file only
// overrides what it sets.
type Options struct {
	// Separator joins multi-valued fields such as Authors.
	Separator string `yaml:"separator"`

	// Format is the default output format when neither the --format flag nor
	// the output extension decides it.
	Format string `yaml:"format"`
}

// Default returns the options matching the stock extractor behavior.
func Default() Options {
	return Options{Separator: endnote.DefaultSeparator}
}

// Load reads an options file, layering it over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	if opts.Separator == "" {
		opts.Separator = endnote.DefaultSeparator
	}

	return opts, nil
}
