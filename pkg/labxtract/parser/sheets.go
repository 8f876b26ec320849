package parser

import (
	"strings"

	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

// sheetNameFragments is the priority-ordered list of name fragments that
// mark a sheet as the likely analysis sheet. Every sheet is tested against a
// fragment before the next fragment is tried.
var sheetNameFragments = []string{
	"analysis",
	"results",
	"data",
	"soil",
	"leaf",
	"nutrient",
}

// SelectWorksheet picks the worksheet to analyze. It returns the first sheet
// whose name contains a priority fragment (case-insensitively), falling back
// to the first non-empty sheet, then to the first sheet unconditionally.
// A workbook with zero sheets is a precondition violation; nil is returned.
func SelectWorksheet(wb *models.Workbook) *models.Worksheet {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil
	}

	for _, fragment := range sheetNameFragments {
		for _, ws := range wb.Sheets {
			if strings.Contains(strings.ToLower(ws.Name), fragment) {
				return ws
			}
		}
	}

	for _, ws := range wb.Sheets {
		if ws.RowCount() > 0 {
			return ws
		}
	}

	return wb.Sheets[0]
}
