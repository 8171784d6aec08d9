package xlchart

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/output"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/parser"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/plot"
	"github.com/xuri/excelize/v2"
)

// Plot reads a sheet of an Excel file and plots the selected ranges.
func Plot(path string, opts Options) (*models.ChartSpec, error) {
	f, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return PlotWorkbook(f, path, opts)
}

// PlotWorkbook plots the selected ranges of an open workbook. path is only
// used in error messages.
func PlotWorkbook(f *excelize.File, path string, opts Options) (*models.ChartSpec, error) {
	logger := opts.logger()

	sheetName, grid, err := ReadSheet(f, path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	logger.Printf("[plot] %s: read sheet %q", path, sheetName)

	ranges, err := resolveSelection(f, sheetName, grid, opts.Selection)
	if err != nil {
		return nil, err
	}

	r, err := newRenderer(opts)
	if err != nil {
		return nil, err
	}

	assembler := plot.NewAssembler(r, logger)
	assembler.SetMaxCells(opts.MaxCells)
	if err := assembler.Handle(plot.CommandPlotChart, grid, ranges); err != nil {
		return nil, err
	}
	return assembler.Spec(), nil
}

// resolveSelection returns the explicit selection, or else the sheet's print
// areas, or else its detected data range. Explicit references naming another
// sheet are rejected.
func resolveSelection(f *excelize.File, sheetName string, grid *models.Grid, refs []string) ([]models.CellRange, error) {
	if len(refs) > 0 {
		var ranges []models.CellRange
		for _, ref := range refs {
			rs, err := parser.ParseSelection(ref)
			if err != nil {
				return nil, err
			}
			for _, r := range rs {
				if r.Sheet != "" && !strings.EqualFold(r.Sheet, sheetName) {
					return nil, fmt.Errorf("%w: %q refers to sheet %q, plotting sheet %q",
						parser.ErrInvalidReference, ref, r.Sheet, sheetName)
				}
				ranges = append(ranges, r.Range)
			}
		}
		return ranges, nil
	}

	if areas := parser.PrintAreaSelections(f, sheetName); len(areas) > 0 {
		return areas, nil
	}

	if r, ok := parser.DetectDataRange(grid, parser.DefaultDataRangeParams()); ok {
		return []models.CellRange{r}, nil
	}

	return nil, fmt.Errorf("%w in sheet %q", ErrEmptySelection, sheetName)
}

func newRenderer(opts Options) (plot.Renderer, error) {
	if opts.Output == nil {
		return nil, nil
	}

	format := opts.Format
	if format == "" {
		format = DefaultOptions().Format
	}

	switch format {
	case FormatJSON:
		return output.JSONRenderer(opts.Output, opts.Pretty), nil
	case FormatHTML:
		return output.HTMLRenderer(opts.Output), nil
	case FormatXLSX:
		return output.XLSXRenderer(opts.Output), nil
	case FormatText:
		return output.TextRenderer(opts.Output), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json, html, xlsx, or text)", format)
	}
}
