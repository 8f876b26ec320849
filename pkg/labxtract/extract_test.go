package labxtract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
)

func singleSheetWorkbook(ws *models.Worksheet) *models.Workbook {
	return &models.Workbook{Sheets: []*models.Worksheet{ws}}
}

func TestExtractProximityOrder(t *testing.T) {
	ws := models.NewWorksheet("Soil Analysis")
	ws.SetCell(2, 2, models.TextCell("pH"))       // B2
	ws.SetCell(2, 3, models.NumberCell(6.5))      // C2: offset (0,+1), confidence 90
	ws.SetCell(3, 2, models.NumberCell(7.0))      // B3: offset (+1,0), confidence 85

	res, err := Extract(singleSheetWorkbook(ws), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 6.5, res.Values["pH"])
	assert.Equal(t, "C2", res.CellRefs["pH"])
	// Single winner at 90: 30 + 90*0.4 + 5 + 15 = 86.
	assert.Equal(t, 86, res.Confidence)
	assert.Equal(t, "Soil Analysis", res.ExtractedFrom)
}

func TestExtractDedupesAcrossLabels(t *testing.T) {
	ws := models.NewWorksheet("Analysis")
	ws.SetCell(1, 1, models.TextCell("Nitrogen"))
	ws.SetCell(1, 2, models.NumberCell(0.25)) // right of label: confidence 90
	ws.SetCell(5, 1, models.TextCell("Total Nitrogen"))
	ws.SetCell(6, 1, models.NumberCell(0.31)) // below label: confidence 85

	res, err := Extract(singleSheetWorkbook(ws), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Values, 1)
	assert.Equal(t, 0.25, res.Values["nitrogen"])
	assert.Equal(t, "B1", res.CellRefs["nitrogen"])
}

func TestExtractKeyValueSheet(t *testing.T) {
	ws := models.NewWorksheet("Soil Analysis")
	rows := []struct {
		label string
		value float64
	}{
		{"pH", 6.5},
		{"Nitrogen (%)", 0.25},
		{"Phosphorus (ppm)", 12.4},
		{"Potassium (ppm)", 150},
		{"Organic Matter (%)", 3.4},
	}
	for i, r := range rows {
		ws.SetCell(i+1, 1, models.TextCell(r.label))
		ws.SetCell(i+1, 2, models.NumberCell(r.value))
	}

	res, err := Extract(singleSheetWorkbook(ws), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 6.5, res.Values["pH"])
	assert.Equal(t, 0.25, res.Values["nitrogen"])
	assert.Equal(t, 12.4, res.Values["phosphorus"])
	assert.Equal(t, 150.0, res.Values["potassium"])
	assert.Equal(t, 3.4, res.Values["organic_matter"])
	assert.Equal(t, models.LayoutKeyValue, res.Layout)
	for param, ref := range res.CellRefs {
		_, ok := res.Values[param]
		assert.True(t, ok, "cell ref %s for %s without a value", ref, param)
	}
}

func TestExtractFallbackActivation(t *testing.T) {
	ws := models.NewWorksheet("Report")
	ws.SetCell(1, 1, models.TextCell("pH: 6.2, Nitrogen - 0.25"))

	res, err := Extract(singleSheetWorkbook(ws), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 6.2, res.Values["pH"])
	assert.Equal(t, 0.25, res.Values["nitrogen"])
	assert.Equal(t, "text-scan", res.CellRefs["pH"])
	assert.Equal(t, "text-scan", res.CellRefs["nitrogen"])
	// Two fallback winners at 50: 30 + 50*0.4 + 10 = 60.
	assert.Equal(t, 60, res.Confidence)
}

func TestExtractEmptySheet(t *testing.T) {
	res, err := Extract(singleSheetWorkbook(models.NewWorksheet("Blank")), DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Values)
	assert.Empty(t, res.CellRefs)
	assert.Equal(t, 0, res.Confidence)
	assert.Equal(t, "Blank", res.ExtractedFrom)
}

func TestExtractDeterminism(t *testing.T) {
	ws := models.NewWorksheet("Analysis")
	ws.SetCell(1, 1, models.TextCell("pH"))
	ws.SetCell(1, 2, models.NumberCell(6.5))
	ws.SetCell(2, 1, models.TextCell("Nitrogen"))
	ws.SetCell(2, 2, models.NumberCell(0.25))
	ws.SetCell(3, 1, models.TextCell("Potassium"))
	ws.SetCell(3, 2, models.TextCell("150 ppm"))
	wb := singleSheetWorkbook(ws)

	first, err := Extract(wb, DefaultOptions())
	require.NoError(t, err)
	second, err := Extract(wb, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractSheetSelection(t *testing.T) {
	cover := models.NewWorksheet("Cover")
	cover.SetCell(1, 1, models.TextCell("Acme Laboratories"))
	analysis := models.NewWorksheet("Nutrient Analysis")
	analysis.SetCell(1, 1, models.TextCell("pH"))
	analysis.SetCell(1, 2, models.NumberCell(5.8))
	wb := &models.Workbook{Sheets: []*models.Worksheet{cover, analysis}}

	res, err := Extract(wb, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Nutrient Analysis", res.ExtractedFrom)
	assert.Equal(t, []string{"Cover", "Nutrient Analysis"}, res.SheetNames)
	assert.Equal(t, 5.8, res.Values["pH"])
}

func TestExtractSheetByName(t *testing.T) {
	cover := models.NewWorksheet("Cover")
	cover.SetCell(1, 1, models.TextCell("pH"))
	cover.SetCell(1, 2, models.NumberCell(7.2))
	analysis := models.NewWorksheet("Analysis")
	wb := &models.Workbook{Sheets: []*models.Worksheet{cover, analysis}}

	res, err := ExtractSheet(wb, "Cover", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Cover", res.ExtractedFrom)
	assert.Equal(t, 7.2, res.Values["pH"])

	_, err = ExtractSheet(wb, "Missing", DefaultOptions())
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestExtractNoWorkbook(t *testing.T) {
	_, err := Extract(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoWorkbook)

	_, err = Extract(&models.Workbook{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoWorkbook)
}

func TestExtractCustomTuning(t *testing.T) {
	ws := models.NewWorksheet("Analysis")
	ws.SetCell(1, 1, models.TextCell("Nitrgen")) // typo label
	ws.SetCell(1, 2, models.NumberCell(0.25))

	strict := DefaultOptions()
	strict.Tuning.FuzzyThreshold = 0.95

	res, err := Extract(singleSheetWorkbook(ws), strict)
	require.NoError(t, err)
	assert.NotContains(t, res.Values, "nitrogen")

	res, err = Extract(singleSheetWorkbook(ws), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.25, res.Values["nitrogen"])
}
