// Package models defines data structures for lab-sheet extraction.
package models

import "strconv"

// CellKind identifies the variant stored in a Cell.
type CellKind int

const (
	// CellEmpty is an absent or blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a plain numeric cell.
	CellNumber
	// CellText is a plain string cell.
	CellText
	// CellFormula is a formula cell carrying its cached result.
	CellFormula
	// CellRichText is a rich text cell collapsed to its plain-text rendering.
	CellRichText
)

// Cell is a tagged union over the value kinds a spreadsheet cell can hold.
// Exactly the fields relevant to Kind are meaningful; the rest are zero.
type Cell struct {
	// Kind selects the active variant.
	Kind CellKind
	// Number holds the value for CellNumber, or the cached numeric result
	// of a CellFormula when NumericResult is true.
	Number float64
	// Text holds the value for CellText and CellRichText, or the cached
	// textual result of a CellFormula when NumericResult is false.
	Text string
	// Formula holds the formula expression for CellFormula.
	Formula string
	// NumericResult reports whether a formula's cached result is numeric.
	NumericResult bool
}

// NumberCell returns a plain numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a plain string cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// RichTextCell returns a rich text cell holding its plain-text rendering.
func RichTextCell(s string) Cell {
	return Cell{Kind: CellRichText, Text: s}
}

// FormulaNumberCell returns a formula cell whose cached result is numeric.
func FormulaNumberCell(expr string, result float64) Cell {
	return Cell{Kind: CellFormula, Formula: expr, Number: result, NumericResult: true}
}

// FormulaTextCell returns a formula cell whose cached result is textual.
func FormulaTextCell(expr, result string) Cell {
	return Cell{Kind: CellFormula, Formula: expr, Text: result}
}

// Address locates a cell within a worksheet. Rows and columns are 1-based.
type Address struct {
	// Row is the 1-based row index.
	Row int
	// Col is the 1-based column index.
	Col int
}

// String renders the address in A1 notation (e.g. "B7").
func (a Address) String() string {
	return ColumnName(a.Col) + strconv.Itoa(a.Row)
}

// ColumnName converts a 1-based column index to its letter name
// (1 -> "A", 26 -> "Z", 27 -> "AA").
func ColumnName(col int) string {
	name := make([]byte, 0, 3)
	for col > 0 {
		col--
		name = append(name, byte('A'+col%26))
		col /= 26
	}
	for i, j := 0, len(name)-1; i < j; i, j = i+1, j-1 {
		name[i], name[j] = name[j], name[i]
	}
	return string(name)
}
