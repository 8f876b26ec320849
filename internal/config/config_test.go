package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolab/labxtract-go/pkg/labxtract"
)

func TestLoadAndApply(t *testing.T) {
	yaml := `
fuzzy_threshold: 0.9
fallback_confidence: 40
synonyms:
  nitrogen:
    - "Kjeldahl N"
`
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	opts := labxtract.DefaultOptions()
	cfg.Apply(&opts)

	assert.Equal(t, 0.9, opts.Tuning.FuzzyThreshold)
	assert.Equal(t, 40, opts.Tuning.FallbackConfidence)
	// Unset fields keep their defaults.
	assert.Equal(t, 95, opts.Tuning.ConfidenceCap)

	require.NotNil(t, opts.Dictionary)
	var found bool
	for _, p := range opts.Dictionary.Parameters() {
		if p.Name == "nitrogen" {
			for _, v := range p.Variants {
				if v == "kjeldahl n" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "extra synonym not merged into dictionary")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fuzzy_threshold: [broken"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
