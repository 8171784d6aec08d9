package plot

import (
	"testing"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		r        models.CellRange
		expected Axis
	}{
		{"single cell", models.CellRange{}, CompareColumns},
		{"wide", models.CellRange{LastRow: 1, LastColumn: 4}, CompareRows},
		{"tall", models.CellRange{LastRow: 4, LastColumn: 1}, CompareColumns},
		{"square", models.CellRange{FirstRow: 2, LastRow: 5, FirstColumn: 7, LastColumn: 10}, CompareColumns},
		{"one wider", models.CellRange{FirstRow: 2, LastRow: 5, FirstColumn: 7, LastColumn: 11}, CompareRows},
		{"single row", models.CellRange{FirstRow: 9, LastRow: 9, LastColumn: 1}, CompareRows},
		{"single column", models.CellRange{LastRow: 1, FirstColumn: 3, LastColumn: 3}, CompareColumns},
	}

	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.expected {
			t.Errorf("%s: Classify(%+v) = %s, expected %s", tt.name, tt.r, got, tt.expected)
		}
	}
}

func TestAxisTitle(t *testing.T) {
	if got := CompareRows.Title(); got != "Compare rows" {
		t.Errorf("CompareRows.Title() = %q", got)
	}
	if got := CompareColumns.Title(); got != "Compare columns" {
		t.Errorf("CompareColumns.Title() = %q", got)
	}
}
