package models

// Grid is an in-memory, read-only view of a sheet's cells addressed by
// zero-based (row, column). Rows without any stored cell are absent.
type Grid struct {
	rows map[int]map[int]Cell
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{rows: make(map[int]map[int]Cell)}
}

// Set stores a cell. It is only used while the snapshot is being built.
func (g *Grid) Set(row, col int, c Cell) {
	cols, ok := g.rows[row]
	if !ok {
		cols = make(map[int]Cell)
		g.rows[row] = cols
	}
	cols[col] = c
}

// Cell returns the cell at (row, col) and whether it exists.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	cols, ok := g.rows[row]
	if !ok {
		return Cell{}, false
	}
	c, ok := cols[col]
	return c, ok
}

// HasRow reports whether the row holds at least one cell.
func (g *Grid) HasRow(row int) bool {
	_, ok := g.rows[row]
	return ok
}

// Numeric returns the numeric value at (row, col). The second result is
// false when the row or cell is absent or the cell is not numeric.
func (g *Grid) Numeric(row, col int) (float64, bool) {
	c, ok := g.Cell(row, col)
	if !ok || c.Kind != CellNumeric {
		return 0, false
	}
	return c.Number, true
}

// Bounds returns the smallest range covering every stored cell.
// The second result is false for an empty grid.
func (g *Grid) Bounds() (CellRange, bool) {
	var r CellRange
	found := false
	for row, cols := range g.rows {
		for col := range cols {
			if !found {
				r = CellRange{FirstRow: row, LastRow: row, FirstColumn: col, LastColumn: col}
				found = true
				continue
			}
			r.FirstRow = min(r.FirstRow, row)
			r.LastRow = max(r.LastRow, row)
			r.FirstColumn = min(r.FirstColumn, col)
			r.LastColumn = max(r.LastColumn, col)
		}
	}
	return r, found
}

// Count returns the number of stored cells inside r.
func (g *Grid) Count(r CellRange) int {
	n := 0
	for row := r.FirstRow; row <= r.LastRow; row++ {
		cols, ok := g.rows[row]
		if !ok {
			continue
		}
		for col := range cols {
			if col >= r.FirstColumn && col <= r.LastColumn {
				n++
			}
		}
	}
	return n
}
