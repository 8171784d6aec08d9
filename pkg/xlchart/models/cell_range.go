// Package models defines data structures for spreadsheet charting.
package models

import (
	"fmt"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/colname"
)

// CellRange represents a rectangular block of cells.
type CellRange struct {
	// FirstRow is the start row (0-based).
	FirstRow int `json:"first_row"`
	// LastRow is the end row (0-based, inclusive).
	LastRow int `json:"last_row"`
	// FirstColumn is the start column (0-based).
	FirstColumn int `json:"first_column"`
	// LastColumn is the end column (0-based, inclusive).
	LastColumn int `json:"last_column"`
}

// Valid reports whether the range has non-negative coordinates and ordered bounds.
func (r CellRange) Valid() bool {
	return r.FirstRow >= 0 && r.FirstColumn >= 0 &&
		r.FirstRow <= r.LastRow && r.FirstColumn <= r.LastColumn
}

// Rows returns the number of rows covered by the range.
func (r CellRange) Rows() int {
	return r.LastRow - r.FirstRow + 1
}

// Columns returns the number of columns covered by the range.
func (r CellRange) Columns() int {
	return r.LastColumn - r.FirstColumn + 1
}

// String renders the range in A1 notation, e.g. "A1:C3".
func (r CellRange) String() string {
	return fmt.Sprintf("%s%d:%s%d",
		colname.Encode(r.FirstColumn), r.FirstRow+1,
		colname.Encode(r.LastColumn), r.LastRow+1)
}
