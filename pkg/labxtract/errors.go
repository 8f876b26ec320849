package labxtract

import "errors"

// ErrNoWorkbook indicates the workbook is nil or has no sheets.
var ErrNoWorkbook = errors.New("workbook has no sheets")

// ErrSheetNotFound indicates the named sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")
