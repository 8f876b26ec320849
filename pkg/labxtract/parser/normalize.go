// Package parser implements the lab-sheet parameter extraction engine:
// cell normalization, label matching, worksheet selection, proximity value
// search, fallback text extraction, aggregation, and layout classification.
package parser

import (
	"strconv"
	"strings"

	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

// Value is the canonical display value of a normalized cell: either a
// number or a non-empty text string.
type Value struct {
	// Number holds the numeric value when IsNumber is true.
	Number float64
	// Text holds the textual value when IsNumber is false.
	Text string
	// IsNumber reports which variant is set.
	IsNumber bool
}

// NormalizeCell converts a cell into its display value. Formula cells prefer
// their cached result over the formula text; rich text collapses to its
// plain-text rendering. Empty and unrecognized cells normalize to false.
func NormalizeCell(c models.Cell) (Value, bool) {
	switch c.Kind {
	case models.CellNumber:
		return Value{Number: c.Number, IsNumber: true}, true
	case models.CellText, models.CellRichText:
		text := strings.TrimSpace(c.Text)
		if text == "" {
			return Value{}, false
		}
		return Value{Text: text}, true
	case models.CellFormula:
		if c.NumericResult {
			return Value{Number: c.Number, IsNumber: true}, true
		}
		text := strings.TrimSpace(c.Text)
		if text == "" {
			return Value{}, false
		}
		return Value{Text: text}, true
	default:
		return Value{}, false
	}
}

// CleanNumber parses a number out of a noisy cell string by dropping every
// rune except digits, '.' and '-'. Currency signs, percent symbols and
// thousands separators all fall away ("1,250 mg/kg" -> 1250).
func CleanNumber(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumericValue extracts a number from a normalized value, applying
// CleanNumber to textual values.
func NumericValue(v Value) (float64, bool) {
	if v.IsNumber {
		return v.Number, true
	}
	return CleanNumber(v.Text)
}
