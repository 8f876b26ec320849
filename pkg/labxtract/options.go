// Package labxtract extracts named chemical parameters, with confidence and
// cell provenance, from laboratory spreadsheets of unknown layout.
package labxtract

import (
	"github.com/agrolab/labxtract-go/pkg/labxtract/dict"
	"github.com/agrolab/labxtract-go/pkg/labxtract/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Tuning holds the heuristic constants (fuzzy threshold, confidence
	// weights). Zero-value fields are not meaningful; start from
	// DefaultOptions and override.
	Tuning parser.Tuning
	// Dictionary is the parameter synonym dictionary. If nil, the built-in
	// dictionary is used.
	Dictionary *dict.Dictionary
	// Layout holds the layout-classification thresholds.
	Layout parser.LayoutParams
}

// DefaultOptions returns options with the calibrated defaults and the
// built-in dictionary.
func DefaultOptions() Options {
	return Options{
		Tuning: parser.DefaultTuning(),
		Layout: parser.DefaultLayoutParams(),
	}
}

func (o Options) dictionary() *dict.Dictionary {
	if o.Dictionary != nil {
		return o.Dictionary
	}
	return dict.Default()
}
