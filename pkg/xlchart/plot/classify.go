// Package plot turns selected cell ranges into column chart series.
package plot

import "github.com/ukaji3/xlchart-go/pkg/xlchart/models"

// Axis selects whether each series is built from a row or a column.
type Axis int

const (
	// CompareColumns builds one series per column, labeled by row number.
	CompareColumns Axis = iota
	// CompareRows builds one series per row, labeled by column name.
	CompareRows
)

// Title returns the chart title used for the axis.
func (a Axis) Title() string {
	if a == CompareRows {
		return "Compare rows"
	}
	return "Compare columns"
}

func (a Axis) String() string {
	if a == CompareRows {
		return "rows"
	}
	return "columns"
}

// Classify picks the comparison axis for a range. Rows are compared only
// when the range spans strictly more columns than rows; equal spans compare
// columns.
func Classify(r models.CellRange) Axis {
	numRows := r.LastRow - r.FirstRow
	numCols := r.LastColumn - r.FirstColumn
	if numCols > numRows {
		return CompareRows
	}
	return CompareColumns
}
