package xlchart

import (
	"fmt"
	"os"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/parser"
	"github.com/xuri/excelize/v2"
)

// OpenWorkbook opens an Excel file. Failures are returned as *ReadError
// wrapping ErrFileNotFound, ErrNotSpreadsheet or ErrInvalidFormat.
func OpenWorkbook(path string) (*excelize.File, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.IsDir()) {
		return nil, NewReadError(path, "open", ErrFileNotFound)
	}
	if err != nil {
		return nil, NewReadError(path, "open", err)
	}

	if !parser.IsSpreadsheet(path) {
		return nil, NewReadError(path, "open", ErrNotSpreadsheet)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewReadError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return f, nil
}

// ResolveSheet returns sheetName if the workbook has it, or the active
// sheet's name when sheetName is empty.
func ResolveSheet(f *excelize.File, sheetName string) (string, error) {
	if sheetName == "" {
		return f.GetSheetName(f.GetActiveSheetIndex()), nil
	}
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	return sheetName, nil
}

// ReadSheet loads the snapshot of one sheet.
func ReadSheet(f *excelize.File, path, sheetName string) (string, *models.Grid, error) {
	name, err := ResolveSheet(f, sheetName)
	if err != nil {
		return "", nil, NewReadError(path, "sheet", err)
	}
	grid, err := parser.LoadSnapshot(f, name)
	if err != nil {
		return "", nil, NewReadError(path, "cells", err)
	}
	return name, grid, nil
}
