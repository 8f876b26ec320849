package parser

import "github.com/agrolab/labxtract-go/pkg/labxtract/models"

// valueOffset is one candidate position for a value cell relative to a
// recognized label cell.
type valueOffset struct {
	dRow       int
	dCol       int
	confidence int
}

// valueOffsets encodes the prior over where a label's value sits: most
// likely immediately to the right, then below, then below-right, and so on,
// following common lab-report table conventions. Order is significant; the
// first offset that yields a number wins regardless of value magnitude.
var valueOffsets = []valueOffset{
	{0, 1, 90},
	{1, 0, 85},
	{1, 1, 80},
	{0, 2, 75},
	{2, 0, 70},
	{-1, 1, 65},
	{1, -1, 60},
}

// ValueHit is a numeric value found near a label cell.
type ValueHit struct {
	// Value is the extracted number.
	Value float64
	// Confidence is the offset's confidence score.
	Confidence int
	// Addr is the address of the value cell.
	Addr models.Address
}

// FindAdjacentValue searches the fixed offset list around a label cell and
// returns the first offset holding a parseable number. Offsets falling
// outside the 1-indexed grid are skipped; unparseable cells never abort the
// search.
func FindAdjacentValue(ws *models.Worksheet, at models.Address) (ValueHit, bool) {
	for _, off := range valueOffsets {
		row, col := at.Row+off.dRow, at.Col+off.dCol
		if row < 1 || col < 1 {
			continue
		}
		cell, ok := ws.Cell(row, col)
		if !ok {
			continue
		}
		v, ok := NormalizeCell(cell)
		if !ok {
			continue
		}
		num, ok := NumericValue(v)
		if !ok {
			continue
		}
		return ValueHit{
			Value:      num,
			Confidence: off.confidence,
			Addr:       models.Address{Row: row, Col: col},
		}, true
	}
	return ValueHit{}, false
}
