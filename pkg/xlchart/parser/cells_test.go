package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/xuri/excelize/v2"
)

func TestLoadSnapshot(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "A4", "123")
	f.SetCellValue(sheetName, "B4", 0)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := LoadSnapshot(f2, sheetName)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if c, ok := grid.Cell(0, 0); !ok || c.Kind != models.CellText || c.Text != "Header1" {
		t.Errorf("Expected text 'Header1' at A1, got %+v (present: %v)", c, ok)
	}
	if v, ok := grid.Numeric(1, 0); !ok || v != 100 {
		t.Errorf("Expected 100 at A2, got %v (numeric: %v)", v, ok)
	}
	if v, ok := grid.Numeric(1, 1); !ok || v != 200.5 {
		t.Errorf("Expected 200.5 at B2, got %v (numeric: %v)", v, ok)
	}
	if _, ok := grid.Numeric(1, 2); ok {
		t.Errorf("Expected boolean at C2 to be non-numeric")
	}
	if _, ok := grid.Numeric(3, 0); ok {
		t.Errorf("Expected string '123' at A4 to be non-numeric")
	}
	if v, ok := grid.Numeric(3, 1); !ok || v != 0 {
		t.Errorf("Expected 0 at B4, got %v (numeric: %v)", v, ok)
	}
	if grid.HasRow(2) {
		t.Errorf("Expected row 3 to be absent")
	}
}

func TestLoadSnapshotMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := LoadSnapshot(f, "Nope"); err == nil {
		t.Errorf("Expected error for missing sheet")
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw      string
		cellType excelize.CellType
		expected models.Cell
	}{
		{"123", excelize.CellTypeUnset, models.NumberCell(123)},
		{"123.45", excelize.CellTypeNumber, models.NumberCell(123.45)},
		{"-1E3", excelize.CellTypeUnset, models.NumberCell(-1000)},
		{"hello", excelize.CellTypeUnset, models.TextCell("hello")},
		{"42", excelize.CellTypeSharedString, models.TextCell("42")},
		{"1", excelize.CellTypeBool, models.TextCell("1")},
		{"7", excelize.CellTypeFormula, models.TextCell("7")},
	}

	for _, tt := range tests {
		result := parseCell(tt.raw, tt.cellType)
		if result != tt.expected {
			t.Errorf("parseCell(%q, %v) = %+v, expected %+v", tt.raw, tt.cellType, result, tt.expected)
		}
	}
}
