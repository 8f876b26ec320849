// Package config loads the optional CLI tuning file. The engine's heuristic
// constants are calibration, not correctness requirements, so they can be
// overridden per deployment without rebuilding.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agrolab/labxtract-go/pkg/labxtract"
	"github.com/agrolab/labxtract-go/pkg/labxtract/dict"
)

// Config mirrors the yaml tuning file. Nil fields keep the built-in default.
type Config struct {
	// FuzzyThreshold overrides the minimum fuzzy-match similarity.
	FuzzyThreshold *float64 `yaml:"fuzzy_threshold"`
	// FallbackConfidence overrides the text-scan confidence.
	FallbackConfidence *int `yaml:"fallback_confidence"`
	// ConfidenceCap overrides the overall confidence cap.
	ConfidenceCap *int `yaml:"confidence_cap"`
	// Synonyms adds extra variants per canonical parameter name.
	Synonyms map[string][]string `yaml:"synonyms"`
}

// Load reads and parses a yaml tuning file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// Apply overlays the configured overrides onto extraction options.
func (c *Config) Apply(opts *labxtract.Options) {
	if c.FuzzyThreshold != nil {
		opts.Tuning.FuzzyThreshold = *c.FuzzyThreshold
	}
	if c.FallbackConfidence != nil {
		opts.Tuning.FallbackConfidence = *c.FallbackConfidence
	}
	if c.ConfidenceCap != nil {
		opts.Tuning.ConfidenceCap = *c.ConfidenceCap
	}
	if len(c.Synonyms) > 0 {
		opts.Dictionary = dict.Default().With(c.Synonyms)
	}
}
