package labxtract

import (
	"github.com/agrolab/labxtract-go/pkg/labxtract/dict"
	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
	"github.com/agrolab/labxtract-go/pkg/labxtract/parser"
)

// Extract analyzes the most likely worksheet of a workbook and returns the
// extracted parameters. It is a pure function of its inputs: it performs no
// I/O, holds no state between calls, and yields identical results for
// identical inputs, so independent workbooks may be processed concurrently.
//
// An empty or unreadable sheet is not an error; it yields an empty value map
// with confidence zero.
func Extract(wb *models.Workbook, opts Options) (*models.ExtractionResult, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, ErrNoWorkbook
	}
	ws := parser.SelectWorksheet(wb)
	return extractSheet(wb, ws, opts), nil
}

// ExtractSheet analyzes one named worksheet instead of the automatically
// selected one.
func ExtractSheet(wb *models.Workbook, sheet string, opts Options) (*models.ExtractionResult, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, ErrNoWorkbook
	}
	ws := wb.Sheet(sheet)
	if ws == nil {
		return nil, ErrSheetNotFound
	}
	return extractSheet(wb, ws, opts), nil
}

func extractSheet(wb *models.Workbook, ws *models.Worksheet, opts Options) *models.ExtractionResult {
	d := opts.dictionary()

	locations := scanLabels(ws, d, opts.Tuning.FuzzyThreshold)
	if len(locations) == 0 {
		locations = parser.ExtractFromText(ws, d, opts.Tuning.FallbackConfidence)
	}

	winners := parser.Dedupe(locations)

	result := &models.ExtractionResult{
		Values:        make(map[string]float64, len(winners)),
		CellRefs:      make(map[string]string, len(winners)),
		Confidence:    parser.OverallConfidence(winners, opts.Tuning),
		SheetNames:    wb.SheetNames(),
		ExtractedFrom: ws.Name,
		Layout:        parser.ClassifyLayout(ws, opts.Layout),
	}
	for _, w := range winners {
		result.Values[w.Parameter] = w.Value
		result.CellRefs[w.Parameter] = w.CellRef
	}
	return result
}

// scanLabels walks every non-empty cell in row-major order, matches textual
// cells against the synonym dictionary, and resolves each recognized label
// to an adjacent numeric value. One candidate is collected per (cell,
// parameter) pair; deduplication happens downstream.
func scanLabels(ws *models.Worksheet, d *dict.Dictionary, threshold float64) []models.ParameterLocation {
	var locations []models.ParameterLocation

	for _, row := range ws.Rows() {
		for _, addr := range ws.RowAddresses(row) {
			cell, _ := ws.Cell(addr.Row, addr.Col)
			v, ok := parser.NormalizeCell(cell)
			if !ok || v.IsNumber {
				continue
			}

			for _, p := range d.Parameters() {
				for _, variant := range p.Variants {
					if !parser.Matches(v.Text, variant, threshold) {
						continue
					}
					hit, found := parser.FindAdjacentValue(ws, addr)
					if found {
						locations = append(locations, models.ParameterLocation{
							Parameter:  p.Name,
							Value:      hit.Value,
							CellRef:    hit.Addr.String(),
							Confidence: hit.Confidence,
						})
					}
					break
				}
			}
		}
	}
	return locations
}
