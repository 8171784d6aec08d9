package plot

import (
	"strconv"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/colname"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// Snapshot gives read access to the numeric content of a sheet.
type Snapshot interface {
	// Numeric returns the value at zero-based (row, col). ok is false for
	// absent rows, absent cells and non-numeric cells.
	Numeric(row, col int) (v float64, ok bool)
}

// Extract builds the series for one range along the given axis.
// Every series has one point per cell on the other axis, so series from the
// same range always line up.
func Extract(snap Snapshot, r models.CellRange, axis Axis) []models.DataSeries {
	if axis == CompareRows {
		return extractRows(snap, r)
	}
	return extractColumns(snap, r)
}

func extractRows(snap Snapshot, r models.CellRange) []models.DataSeries {
	series := make([]models.DataSeries, 0, r.Rows())
	for row := r.FirstRow; row <= r.LastRow; row++ {
		s := models.DataSeries{
			Name:   "Row " + strconv.Itoa(row),
			Points: make([]models.DataPoint, 0, r.Columns()),
		}
		for col := r.FirstColumn; col <= r.LastColumn; col++ {
			s.Points = append(s.Points, models.DataPoint{
				Label: models.ColumnLabel(colname.Encode(col)),
				Value: valueAt(snap, row, col),
			})
		}
		series = append(series, s)
	}
	return series
}

func extractColumns(snap Snapshot, r models.CellRange) []models.DataSeries {
	series := make([]models.DataSeries, 0, r.Columns())
	for col := r.FirstColumn; col <= r.LastColumn; col++ {
		s := models.DataSeries{
			Name:   "Col " + colname.Encode(col),
			Points: make([]models.DataPoint, 0, r.Rows()),
		}
		for row := r.FirstRow; row <= r.LastRow; row++ {
			s.Points = append(s.Points, models.DataPoint{
				Label: models.RowLabel(row + 1),
				Value: valueAt(snap, row, col),
			})
		}
		series = append(series, s)
	}
	return series
}

func valueAt(snap Snapshot, row, col int) models.Value {
	if v, ok := snap.Numeric(row, col); ok {
		return models.Number(v)
	}
	return models.Missing
}
