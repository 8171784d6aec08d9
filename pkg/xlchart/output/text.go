package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/plot"
)

// barWidth is the number of cells used by the longest bar.
const barWidth = 40

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c2e7"))
	seriesStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b4befe"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	missingStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderText draws one block of horizontal bars per series.
func RenderText(spec *models.ChartSpec) string {
	var sb strings.Builder
	if spec.Title != "" {
		sb.WriteString(titleStyle.Render(spec.Title))
		sb.WriteString("\n")
	}

	scale := magnitude(spec)
	labelWidth := 1
	for _, s := range spec.Series {
		for _, p := range s.Points {
			labelWidth = max(labelWidth, len(p.Label.String()))
		}
	}
	labels := labelStyle.Width(labelWidth)

	for _, s := range spec.Series {
		sb.WriteString(seriesStyle.Render(s.Name))
		sb.WriteString("\n")
		for _, p := range s.Points {
			fmt.Fprintf(&sb, "  %s │%s\n", labels.Render(p.Label.String()), bar(p.Value, scale))
		}
	}
	return sb.String()
}

func bar(v models.Value, scale float64) string {
	if !v.Valid {
		return missingStyle.Render(" -")
	}

	n := 0
	if scale > 0 {
		n = int(math.Round(math.Abs(v.Number) / scale * barWidth))
	}
	style := positiveStyle
	if v.Number < 0 {
		style = negativeStyle
	}
	return style.Render(strings.Repeat("█", n)) + " " + strconv.FormatFloat(v.Number, 'g', -1, 64)
}

// TextRenderer writes each drawn chart to w as terminal bars.
func TextRenderer(w io.Writer) plot.Renderer {
	return plot.RendererFunc(func(spec *models.ChartSpec) error {
		_, err := io.WriteString(w, RenderText(spec))
		return err
	})
}
