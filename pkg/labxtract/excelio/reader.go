// Package excelio adapts xlsx files to the in-memory workbook model. It is
// the only package touching the spreadsheet file format; the extraction
// engine itself performs no I/O.
package excelio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

// LoadError wraps a workbook that failed to load or parse.
type LoadError struct {
	// Path is the source file path, or "reader" for stream input.
	Path string
	// Err is the underlying excelize error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workbook %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load opens an xlsx file and converts it to a workbook model.
func Load(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return fromFile(f, path)
}

// Read converts an xlsx stream to a workbook model.
func Read(r io.Reader) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Path: "reader", Err: err}
	}
	defer f.Close()
	return fromFile(f, "reader")
}

func fromFile(f *excelize.File, path string) (*models.Workbook, error) {
	wb := &models.Workbook{}
	for _, sheetName := range f.GetSheetList() {
		ws, err := readSheet(f, sheetName)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		wb.Sheets = append(wb.Sheets, ws)
	}
	return wb, nil
}

// readSheet maps every non-empty cell to the tagged cell model, preferring
// cached formula results over formula text and detecting rich text runs.
func readSheet(f *excelize.File, sheetName string) (*models.Worksheet, error) {
	ws := models.NewWorksheet(sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			rowNum, colNum := rowIdx+1, colIdx+1
			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				continue
			}
			ws.SetCell(rowNum, colNum, readCell(f, sheetName, cellName, raw))
		}
	}

	if err := propagateMerges(f, sheetName, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func readCell(f *excelize.File, sheetName, cellName, raw string) models.Cell {
	if formula, err := f.GetCellFormula(sheetName, cellName); err == nil && formula != "" {
		if num, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.FormulaNumberCell(formula, num)
		}
		return models.FormulaTextCell(formula, raw)
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err == nil {
		switch cellType {
		case excelize.CellTypeNumber, excelize.CellTypeUnset:
			if num, err := strconv.ParseFloat(raw, 64); err == nil {
				return models.NumberCell(num)
			}
			return models.TextCell(raw)
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			if runs, err := f.GetCellRichText(sheetName, cellName); err == nil && len(runs) > 1 {
				return models.RichTextCell(raw)
			}
			return models.TextCell(raw)
		}
	}

	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.NumberCell(num)
	}
	return models.TextCell(raw)
}

// propagateMerges copies each merged region's anchor value to every covered
// coordinate that is still empty. Lab reports routinely merge label cells;
// without this the proximity search misses values next to merged labels.
func propagateMerges(f *excelize.File, sheetName string, ws *models.Worksheet) error {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return err
	}

	for _, merge := range merges {
		value := strings.TrimSpace(merge.GetCellValue())
		if value == "" {
			continue
		}
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			continue
		}

		var cell models.Cell
		if num, err := strconv.ParseFloat(value, 64); err == nil {
			cell = models.NumberCell(num)
		} else {
			cell = models.TextCell(value)
		}

		for r := startRow; r <= endRow; r++ {
			for c := startCol; c <= endCol; c++ {
				if _, ok := ws.Cell(r, c); !ok {
					ws.SetCell(r, c, cell)
				}
			}
		}
	}
	return nil
}
