// Package output serializes extraction results to JSON.
package output

import (
	"encoding/json"

	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

// ToJSON serializes one extraction result.
func ToJSON(res *models.ExtractionResult, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

// SheetResultsToJSON serializes per-sheet results keyed by sheet name.
func SheetResultsToJSON(results map[string]*models.ExtractionResult, pretty bool) ([]byte, error) {
	return marshal(results, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
