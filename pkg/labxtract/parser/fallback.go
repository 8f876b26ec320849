package parser

import (
	"strconv"
	"strings"

	"github.com/agrolab/labxtract-go/pkg/labxtract/dict"
	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

// FallbackCellRef is the placeholder cell reference attached to values
// recovered from flattened text, where per-cell provenance is lost.
const FallbackCellRef = "text-scan"

// ExtractFromText is the lower-trust recovery path for sheets where the
// structured label/value search found nothing. It flattens every non-empty
// cell to lowercase text, space-joined in row-major order, and applies one
// fallback pattern per parameter. Each match yields a location with the
// given fixed confidence and the FallbackCellRef placeholder.
func ExtractFromText(ws *models.Worksheet, d *dict.Dictionary, confidence int) []models.ParameterLocation {
	blob := flattenText(ws)
	if blob == "" {
		return nil
	}

	var locations []models.ParameterLocation
	for _, p := range d.FallbackPatterns() {
		m := p.Re.FindStringSubmatch(blob)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		locations = append(locations, models.ParameterLocation{
			Parameter:  p.Name,
			Value:      value,
			CellRef:    FallbackCellRef,
			Confidence: confidence,
		})
	}
	return locations
}

func flattenText(ws *models.Worksheet) string {
	var parts []string
	for _, row := range ws.Rows() {
		for _, addr := range ws.RowAddresses(row) {
			cell, _ := ws.Cell(addr.Row, addr.Col)
			v, ok := NormalizeCell(cell)
			if !ok {
				continue
			}
			if v.IsNumber {
				parts = append(parts, strconv.FormatFloat(v.Number, 'f', -1, 64))
			} else {
				parts = append(parts, strings.ToLower(v.Text))
			}
		}
	}
	return strings.Join(parts, " ")
}
