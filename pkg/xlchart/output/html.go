package output

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/plot"
)

// missingBar is the ECharts placeholder for an empty data item.
const missingBar = "-"

// BuildBarChart converts a chart configuration to an ECharts bar chart.
func BuildBarChart(spec *models.ChartSpec) *charts.Bar {
	t := alignSeries(spec)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle(spec),
			Width:     "100%",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(t.labelStrings())

	for i, name := range t.names {
		data := make([]opts.BarData, len(t.labels))
		for j, v := range t.values[i] {
			if v.Valid {
				data[j] = opts.BarData{Value: v.Number}
			} else {
				data[j] = opts.BarData{Value: missingBar}
			}
		}
		bar.AddSeries(name, data)
	}

	return bar
}

func pageTitle(spec *models.ChartSpec) string {
	if spec.Title == "" {
		return "Chart"
	}
	return spec.Title
}

// HTMLRenderer writes each drawn chart to w as a standalone HTML page.
func HTMLRenderer(w io.Writer) plot.Renderer {
	return plot.RendererFunc(func(spec *models.ChartSpec) error {
		return BuildBarChart(spec).Render(w)
	})
}
