package models

import (
	"encoding/json"
	"strconv"
)

// ChartType is the chart kind understood by renderers.
type ChartType string

// ChartTypeColumn is a vertical bar chart.
const ChartTypeColumn ChartType = "column"

// Value is a plottable number or the missing-value marker.
// The zero Value is Missing.
type Value struct {
	Number float64
	Valid  bool
}

// Missing marks a position with no plottable data.
var Missing = Value{}

// Number returns a present value.
func Number(v float64) Value {
	return Value{Number: v, Valid: true}
}

// MarshalJSON encodes missing values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Number)
}

// Label is a category identifier: a column name for row series, or a
// 1-based row number for column series.
type Label struct {
	// Name is the column letter name. Empty for row-number labels.
	Name string
	// Row is the 1-based row number. Only used when Name is empty.
	Row int
}

// ColumnLabel returns a label naming a column.
func ColumnLabel(name string) Label {
	return Label{Name: name}
}

// RowLabel returns a label carrying a 1-based row number.
func RowLabel(row int) Label {
	return Label{Row: row}
}

// String returns the display text of the label.
func (l Label) String() string {
	if l.Name != "" {
		return l.Name
	}
	return strconv.Itoa(l.Row)
}

// MarshalJSON encodes column labels as strings and row labels as numbers.
func (l Label) MarshalJSON() ([]byte, error) {
	if l.Name != "" {
		return json.Marshal(l.Name)
	}
	return json.Marshal(l.Row)
}

// DataPoint is a single labeled value in a series.
type DataPoint struct {
	Label Label `json:"label"`
	Value Value `json:"value"`
}

// DataSeries is a named sequence of points plotted together.
type DataSeries struct {
	// Name is the series display name, e.g. "Row 3" or "Col B".
	Name string `json:"name"`
	// Points are ordered along the non-dominant axis of the range.
	Points []DataPoint `json:"points"`
}

// ChartSpec is the complete configuration handed to a renderer.
type ChartSpec struct {
	// Type is the chart type. Always ChartTypeColumn for plotted ranges.
	Type ChartType `json:"type"`
	// Title is the chart title.
	Title string `json:"title"`
	// Series is the list of series in insertion order.
	Series []DataSeries `json:"series"`
}

// NewChartSpec returns an empty column chart with no title.
func NewChartSpec() *ChartSpec {
	return &ChartSpec{Type: ChartTypeColumn, Series: []DataSeries{}}
}
