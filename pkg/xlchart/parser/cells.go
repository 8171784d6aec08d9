// Package parser reads spreadsheet content and cell references.
package parser

import (
	"strconv"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/xuri/excelize/v2"
)

// LoadSnapshot reads every non-empty cell of a sheet into a grid.
// Cells holding numbers become numeric cells; strings, booleans, errors and
// string formula results become text cells.
func LoadSnapshot(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := models.NewGrid()
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			grid.Set(rowIdx, colIdx, parseCell(cellValue, cellType))
		}
	}

	return grid, nil
}

// parseCell classifies a raw cell value by its stored type.
func parseCell(raw string, cellType excelize.CellType) models.Cell {
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if v, ok := parseNumber(raw); ok {
			return models.NumberCell(v)
		}
	}
	return models.TextCell(raw)
}

// parseNumber parses a raw numeric cell value.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
