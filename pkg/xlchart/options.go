// Package xlchart plots cell ranges of Excel workbooks as column charts.
package xlchart

import (
	"io"
	"log"
)

// Format represents the chart output format.
type Format string

const (
	// FormatJSON writes the chart configuration as JSON.
	FormatJSON Format = "json"
	// FormatHTML writes an interactive ECharts page.
	FormatHTML Format = "html"
	// FormatXLSX writes a workbook holding the chart data and a native column chart.
	FormatXLSX Format = "xlsx"
	// FormatText writes horizontal bars for a terminal.
	FormatText Format = "text"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatJSON, FormatHTML, FormatXLSX, FormatText:
		return f, true
	}
	return "", false
}

// Options configures plotting.
type Options struct {
	// Sheet is the sheet to read. Empty selects the workbook's active sheet.
	Sheet string
	// Selection lists A1 references to plot, e.g. "A1:D4".
	// If empty, print areas and then the detected data range are used.
	Selection []string
	// Format selects the renderer.
	Format Format
	// Output receives the rendered chart. Nil skips rendering.
	Output io.Writer
	// Pretty indents JSON output.
	Pretty bool
	// MaxCells caps the cells the selection may cover. Zero uses
	// plot.DefaultMaxCells.
	MaxCells int
	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns default plotting options.
func DefaultOptions() Options {
	return Options{
		Format: FormatHTML,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}
