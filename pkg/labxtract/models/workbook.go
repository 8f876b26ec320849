package models

import "sort"

// Worksheet is a sparse 1-indexed grid of cells with a name.
// The zero value is not usable; construct with NewWorksheet.
type Worksheet struct {
	// Name is the sheet name as it appears in the workbook.
	Name string

	cells  map[Address]Cell
	maxRow int
	maxCol int
}

// NewWorksheet returns an empty named worksheet.
func NewWorksheet(name string) *Worksheet {
	return &Worksheet{
		Name:  name,
		cells: make(map[Address]Cell),
	}
}

// SetCell stores a cell at the given 1-based coordinates. Empty cells and
// out-of-grid coordinates are ignored.
func (ws *Worksheet) SetCell(row, col int, c Cell) {
	if row < 1 || col < 1 || c.Kind == CellEmpty {
		return
	}
	ws.cells[Address{Row: row, Col: col}] = c
	if row > ws.maxRow {
		ws.maxRow = row
	}
	if col > ws.maxCol {
		ws.maxCol = col
	}
}

// Cell returns the cell at the given coordinates and whether it is present.
func (ws *Worksheet) Cell(row, col int) (Cell, bool) {
	c, ok := ws.cells[Address{Row: row, Col: col}]
	return c, ok
}

// RowCount returns the highest occupied row index (the used-range height).
func (ws *Worksheet) RowCount() int {
	return ws.maxRow
}

// ColCount returns the highest occupied column index.
func (ws *Worksheet) ColCount() int {
	return ws.maxCol
}

// CellCount returns the number of non-empty cells.
func (ws *Worksheet) CellCount() int {
	return len(ws.cells)
}

// Rows returns the indexes of non-empty rows in ascending order.
func (ws *Worksheet) Rows() []int {
	seen := make(map[int]struct{})
	for addr := range ws.cells {
		seen[addr.Row] = struct{}{}
	}
	rows := make([]int, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// RowAddresses returns the addresses of non-empty cells in the given row,
// ordered by column.
func (ws *Worksheet) RowAddresses(row int) []Address {
	var addrs []Address
	for addr := range ws.cells {
		if addr.Row == row {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Col < addrs[j].Col })
	return addrs
}

// Workbook is an ordered collection of worksheets. It is read-only to the
// extraction engine; the caller owns it.
type Workbook struct {
	// Sheets lists the worksheets in workbook order.
	Sheets []*Worksheet
}

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.Sheets))
	for i, ws := range wb.Sheets {
		names[i] = ws.Name
	}
	return names
}

// Sheet returns the worksheet with the given name, or nil if absent.
func (wb *Workbook) Sheet(name string) *Worksheet {
	for _, ws := range wb.Sheets {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}
