package plot

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// ErrUnknownCommand indicates a command the assembler does not handle.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidRange indicates a range whose bounds are negative or reversed.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrSelectionTooLarge indicates a selection covering more cells than the
// assembler's limit.
var ErrSelectionTooLarge = errors.New("selection too large")

// DefaultMaxCells is the default limit on the cells a single plot may cover.
const DefaultMaxCells = 1_000_000

// Renderer draws a finished chart configuration.
type Renderer interface {
	Draw(spec *models.ChartSpec) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(spec *models.ChartSpec) error

// Draw calls f(spec).
func (f RendererFunc) Draw(spec *models.ChartSpec) error {
	return f(spec)
}

// Assembler owns the chart configuration and rebuilds it on every plot.
// It is not safe for concurrent use.
type Assembler struct {
	renderer Renderer
	spec     *models.ChartSpec
	logger   *log.Logger
	maxCells int
}

// NewAssembler creates an assembler drawing through r. A nil logger discards output.
func NewAssembler(r Renderer, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Assembler{
		renderer: r,
		spec:     models.NewChartSpec(),
		logger:   logger,
		maxCells: DefaultMaxCells,
	}
}

// SetMaxCells limits the total number of cells a plot may cover. n <= 0
// restores DefaultMaxCells.
func (a *Assembler) SetMaxCells(n int) {
	if n <= 0 {
		n = DefaultMaxCells
	}
	a.maxCells = n
}

// Spec returns the chart configuration produced by the last plot.
func (a *Assembler) Spec() *models.ChartSpec {
	return a.spec
}

// Handle dispatches a user command.
func (a *Assembler) Handle(cmd Command, snap Snapshot, ranges []models.CellRange) error {
	switch cmd {
	case CommandPlotChart:
		_, err := a.Plot(snap, ranges)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// Plot replaces the chart configuration with the series of every range, in
// selection order, and asks the renderer to redraw. The title reflects the
// last range.
func (a *Assembler) Plot(snap Snapshot, ranges []models.CellRange) (*models.ChartSpec, error) {
	for _, r := range ranges {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidRange, r)
		}
	}
	if err := a.checkSize(ranges); err != nil {
		return nil, err
	}

	spec := models.NewChartSpec()
	for _, r := range ranges {
		axis := Classify(r)
		spec.Title = axis.Title()
		series := Extract(snap, r, axis)
		spec.Series = append(spec.Series, series...)
		a.logger.Printf("[plot] %s: comparing %s, %d series", r, axis, len(series))
	}
	a.spec = spec

	if a.renderer != nil {
		if err := a.renderer.Draw(spec); err != nil {
			return spec, fmt.Errorf("draw chart: %w", err)
		}
	}
	return spec, nil
}

// checkSize rejects selections whose combined area exceeds the cell limit.
func (a *Assembler) checkSize(ranges []models.CellRange) error {
	remaining := a.maxCells
	for _, r := range ranges {
		rows, cols := r.Rows(), r.Columns()
		if rows > remaining || cols > remaining/rows {
			return fmt.Errorf("%w: more than %d cells", ErrSelectionTooLarge, a.maxCells)
		}
		remaining -= rows * cols
	}
	return nil
}
