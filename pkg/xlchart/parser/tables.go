package parser

import (
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// DataRangeParams holds thresholds for data range detection.
type DataRangeParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultDataRangeParams returns default data range detection parameters.
func DefaultDataRangeParams() DataRangeParams {
	return DataRangeParams{
		DensityMin:       0.04,
		MinNonemptyCells: 1,
	}
}

// DetectDataRange returns the bounding box of the sheet's cells when it is
// dense enough to be treated as one data block.
func DetectDataRange(g *models.Grid, params DataRangeParams) (models.CellRange, bool) {
	bounds, ok := g.Bounds()
	if !ok {
		return models.CellRange{}, false
	}

	nonEmptyCells := g.Count(bounds)
	if nonEmptyCells < params.MinNonemptyCells {
		return models.CellRange{}, false
	}

	totalCells := bounds.Rows() * bounds.Columns()
	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return models.CellRange{}, false
	}

	return bounds, true
}
