package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/plot"
)

// ToJSON serializes a chart configuration. Missing values become null.
func ToJSON(spec *models.ChartSpec, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}

// JSONRenderer writes each drawn chart to w as one JSON document.
func JSONRenderer(w io.Writer, pretty bool) plot.Renderer {
	return plot.RendererFunc(func(spec *models.ChartSpec) error {
		data, err := ToJSON(spec, pretty)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	})
}
