package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlchart-go/pkg/xlchart"
)

func testConfig() xlchart.Config {
	return xlchart.Config{
		Repository: xlchart.RepositoryConfig{Dir: "."},
		Server:     xlchart.ServerConfig{Addr: ":0"},
		Plot:       xlchart.PlotConfig{Format: "json"},
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputPath, pretty, format, sheet, ranges, verbose = "", false, "", "", nil, false

	var out bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeBook(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{1, 2, 3}))

	path := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestPlotCommand(t *testing.T) {
	path := writeBook(t, t.TempDir())

	out, err := execute(t, "plot", path, "--range", "A1:C1")
	require.NoError(t, err)
	assert.Contains(t, out, `"title":"Compare rows"`)
	assert.Contains(t, out, `"name":"Row 0"`)

	out, err = execute(t, "plot", path, "-r", "A1:C1", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Row 0")
}

func TestPlotCommandOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBook(t, dir)
	target := filepath.Join(dir, "chart.xlsx")

	_, err := execute(t, "plot", path, "--format", "xlsx", "-o", target)
	require.NoError(t, err)

	f, err := excelize.OpenFile(target)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Chart Data")
}

func TestPlotCommandErrors(t *testing.T) {
	path := writeBook(t, t.TempDir())

	_, err := execute(t, "plot", path, "--format", "pdf")
	assert.ErrorContains(t, err, "invalid format")

	_, err = execute(t, "plot", path, "--format", "xlsx")
	assert.ErrorContains(t, err, "requires --output")

	_, err = execute(t, "plot", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, xlchart.ErrFileNotFound)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), nil, 0o644))

	out, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "book.xlsx")
	assert.NotContains(t, out, "readme.md")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "│", "rows are drawn inside a bordered table")
}
