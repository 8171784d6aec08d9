package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/colname"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/plot"
	"github.com/xuri/excelize/v2"
)

// DataSheet is the sheet holding the plotted values.
const DataSheet = "Chart Data"

// ToWorkbook writes the chart values to a new workbook and adds a native
// column chart over them. Missing values are left blank and drawn as gaps.
func ToWorkbook(spec *models.ChartSpec) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		f.Close()
		return nil, err
	}

	t := alignSeries(spec)
	if err := writeTable(f, t); err != nil {
		f.Close()
		return nil, err
	}

	if len(t.names) == 0 || len(t.labels) == 0 {
		return f, nil
	}

	lastCol := colname.Encode(len(t.labels))
	var series []excelize.ChartSeries
	for i := range t.names {
		row := i + 2
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$A$%d", DataSheet, row),
			Categories: fmt.Sprintf("'%s'!$B$1:$%s$1", DataSheet, lastCol),
			Values:     fmt.Sprintf("'%s'!$B$%d:$%s$%d", DataSheet, row, lastCol, row),
		})
	}

	chart := &excelize.Chart{
		Type:         excelize.Col,
		Series:       series,
		Legend:       excelize.ChartLegend{Position: "bottom"},
		ShowBlanksAs: "gap",
		Dimension:    excelize.ChartDimension{Width: 640, Height: 400},
	}
	if spec.Title != "" {
		chart.Title = []excelize.RichTextRun{{Text: spec.Title}}
	}

	anchor := colname.Encode(len(t.labels)+2) + "2"
	if err := f.AddChart(DataSheet, anchor, chart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeTable lays labels out on row 1 and one series per following row.
func writeTable(f *excelize.File, t table) error {
	if err := f.SetCellValue(DataSheet, "A1", "Series"); err != nil {
		return err
	}
	for j, l := range t.labels {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return err
		}
		var v interface{} = l.Name
		if l.Name == "" {
			v = l.Row
		}
		if err := f.SetCellValue(DataSheet, cell, v); err != nil {
			return err
		}
	}

	for i, name := range t.names {
		row := i + 2
		if err := f.SetCellValue(DataSheet, fmt.Sprintf("A%d", row), name); err != nil {
			return err
		}
		for j, v := range t.values[i] {
			if !v.Valid {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(DataSheet, cell, v.Number); err != nil {
				return err
			}
		}
	}
	return nil
}

// XLSXRenderer writes each drawn chart to w as an xlsx workbook.
func XLSXRenderer(w io.Writer) plot.Renderer {
	return plot.RendererFunc(func(spec *models.ChartSpec) error {
		f, err := ToWorkbook(spec)
		if err != nil {
			return err
		}
		defer f.Close()
		return f.Write(w)
	})
}
