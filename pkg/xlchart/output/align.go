// Package output renders chart configurations.
package output

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// table is a chart laid out on a single category axis.
type table struct {
	labels []models.Label
	names  []string
	values [][]models.Value // values[series][label]
}

// alignSeries places every series on the union of all point labels, in the
// order labels are first seen. Positions a series does not cover are Missing.
func alignSeries(spec *models.ChartSpec) table {
	var t table
	index := make(map[models.Label]int)
	for _, s := range spec.Series {
		for _, p := range s.Points {
			if _, ok := index[p.Label]; !ok {
				index[p.Label] = len(t.labels)
				t.labels = append(t.labels, p.Label)
			}
		}
	}

	for _, s := range spec.Series {
		row := make([]models.Value, len(t.labels))
		for _, p := range s.Points {
			row[index[p.Label]] = p.Value
		}
		t.names = append(t.names, s.Name)
		t.values = append(t.values, row)
	}
	return t
}

func (t table) labelStrings() []string {
	out := make([]string, len(t.labels))
	for i, l := range t.labels {
		out[i] = l.String()
	}
	return out
}

// bounds returns the smallest and largest present value of the chart.
// ok is false when every value is missing.
func bounds(spec *models.ChartSpec) (lo, hi float64, ok bool) {
	var data stats.Float64Data
	for _, s := range spec.Series {
		for _, p := range s.Points {
			if p.Value.Valid {
				data = append(data, p.Value.Number)
			}
		}
	}
	if len(data) == 0 {
		return 0, 0, false
	}

	lo, err := stats.Min(data)
	if err != nil {
		return 0, 0, false
	}
	hi, err = stats.Max(data)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

// magnitude returns the largest absolute value of the chart, or 0.
func magnitude(spec *models.ChartSpec) float64 {
	lo, hi, ok := bounds(spec)
	if !ok {
		return 0
	}
	return math.Max(math.Abs(lo), math.Abs(hi))
}
