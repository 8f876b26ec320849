package parser

import "github.com/agrolab/labxtract-go/pkg/labxtract/models"

// LayoutParams holds thresholds for layout classification.
type LayoutParams struct {
	// KeyValueRatioMin is the minimum share of two-cell text/number rows
	// for a key-value classification.
	KeyValueRatioMin float64
	// TableRatioMin is the minimum table score per row for a tabular
	// classification.
	TableRatioMin float64
}

// DefaultLayoutParams returns the default classification thresholds.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		KeyValueRatioMin: 0.6,
		TableRatioMin:    0.6,
	}
}

// ClassifyLayout classifies a worksheet as key-value, tabular or mixed.
// Rows with exactly two cells spanning a text and a number raise the
// key-value score; wide rows raise the table score, with the first row
// weighted double as the likely header. The result is advisory metadata and
// never gates extraction.
func ClassifyLayout(ws *models.Worksheet, params LayoutParams) models.LayoutType {
	keyValueScore := 0
	tableScore := 0

	for _, row := range ws.Rows() {
		addrs := ws.RowAddresses(row)
		hasText, hasNumber := false, false
		for _, addr := range addrs {
			cell, _ := ws.Cell(addr.Row, addr.Col)
			v, ok := NormalizeCell(cell)
			if !ok {
				continue
			}
			if v.IsNumber {
				hasNumber = true
			} else {
				hasText = true
			}
		}

		if len(addrs) == 2 && hasText && hasNumber {
			keyValueScore++
		}
		if len(addrs) > 2 {
			if row == 1 {
				tableScore += 2
			} else {
				tableScore++
			}
		}
	}

	rows := ws.RowCount()
	if rows < 1 {
		rows = 1
	}
	keyValueRatio := float64(keyValueScore) / float64(rows)
	tableRatio := float64(tableScore) / float64(rows)

	switch {
	case keyValueRatio > params.KeyValueRatioMin:
		return models.LayoutKeyValue
	case tableRatio > params.TableRatioMin:
		return models.LayoutTable
	default:
		return models.LayoutMixed
	}
}
