package models

// CellKind classifies a stored cell.
type CellKind int

const (
	// CellText is any non-numeric content. It is never plotted.
	CellText CellKind = iota
	// CellNumeric holds a float64 value.
	CellNumeric
)

// Cell is a single non-empty cell of a sheet.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumeric, Number: v}
}

// TextCell returns a non-numeric cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}
