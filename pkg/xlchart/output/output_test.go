package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

func sampleSpec() *models.ChartSpec {
	spec := models.NewChartSpec()
	spec.Title = "Compare rows"
	spec.Series = []models.DataSeries{
		{Name: "Row 0", Points: []models.DataPoint{
			{Label: models.ColumnLabel("A"), Value: models.Number(5)},
			{Label: models.ColumnLabel("B"), Value: models.Missing},
		}},
		{Name: "Row 1", Points: []models.DataPoint{
			{Label: models.ColumnLabel("A"), Value: models.Number(-2)},
			{Label: models.ColumnLabel("B"), Value: models.Number(10)},
		}},
	}
	return spec
}

func TestAlignSeries(t *testing.T) {
	spec := sampleSpec()
	spec.Series = append(spec.Series, models.DataSeries{Name: "Col C", Points: []models.DataPoint{
		{Label: models.RowLabel(1), Value: models.Number(3)},
	}})

	tbl := alignSeries(spec)
	assert.Equal(t, []string{"A", "B", "1"}, tbl.labelStrings())
	assert.Equal(t, []string{"Row 0", "Row 1", "Col C"}, tbl.names)
	assert.Equal(t, []models.Value{models.Number(5), models.Missing, models.Missing}, tbl.values[0])
	assert.Equal(t, []models.Value{models.Missing, models.Missing, models.Number(3)}, tbl.values[2])
}

func TestBounds(t *testing.T) {
	lo, hi, ok := bounds(sampleSpec())
	require.True(t, ok)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 10.0, hi)
	assert.Equal(t, 10.0, magnitude(sampleSpec()))

	_, _, ok = bounds(models.NewChartSpec())
	assert.False(t, ok)
	assert.Equal(t, 0.0, magnitude(models.NewChartSpec()))
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer(&buf, true).Draw(sampleSpec()))

	var decoded struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Series []struct {
			Name   string `json:"name"`
			Points []struct {
				Label interface{} `json:"label"`
				Value *float64    `json:"value"`
			} `json:"points"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "column", decoded.Type)
	require.Len(t, decoded.Series, 2)
	assert.Nil(t, decoded.Series[0].Points[1].Value)
	require.NotNil(t, decoded.Series[0].Points[0].Value)
	assert.Equal(t, 5.0, *decoded.Series[0].Points[0].Value)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTMLRenderer(&buf).Draw(sampleSpec()))

	html := buf.String()
	assert.Contains(t, html, "<html>")
	assert.Contains(t, html, "Compare rows")
	assert.Contains(t, html, "Row 0")
	assert.Contains(t, html, `"-"`)
}

func TestBuildBarChart(t *testing.T) {
	bar := BuildBarChart(sampleSpec())
	require.Len(t, bar.MultiSeries, 2)
	assert.Equal(t, "Row 1", bar.MultiSeries[1].Name)
}

func TestToWorkbook(t *testing.T) {
	f, err := ToWorkbook(sampleSpec())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Series", "A", "B"}, rows[0])
	assert.Equal(t, []string{"Row 0", "5"}, rows[1], "missing value is left blank")
	assert.Equal(t, []string{"Row 1", "-2", "10"}, rows[2])

	var buf bytes.Buffer
	require.NoError(t, XLSXRenderer(&buf).Draw(sampleSpec()))

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, []string{DataSheet}, reopened.GetSheetList())
}

func TestToWorkbookEmpty(t *testing.T) {
	f, err := ToWorkbook(models.NewChartSpec())
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(DataSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Series", v)
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleSpec())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "Compare rows", lines[0])
	assert.Equal(t, "Row 0", lines[1])
	assert.Equal(t, "  A │"+strings.Repeat("█", 20)+" 5", lines[2])
	assert.Equal(t, "  B │ -", lines[3])
	assert.Equal(t, "  A │"+strings.Repeat("█", 8)+" -2", lines[5])
	assert.Equal(t, "  B │"+strings.Repeat("█", 40)+" 10", lines[6])

	var buf bytes.Buffer
	require.NoError(t, TextRenderer(&buf).Draw(sampleSpec()))
	assert.Equal(t, out, buf.String())
}
