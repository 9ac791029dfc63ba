package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/models"
)

func sampleWells() []models.Well {
	return []models.Well{
		{UWI: "100", WellType: models.WellTypeProduction, DeviationType: models.DeviationHorizontal, WellID: 1, PlotLon: -80.0, PlotLat: 53.0},
		{UWI: "101", WellType: models.WellTypeProduction, DeviationType: models.DeviationHorizontal, WellID: 2, PlotLon: -80.1, PlotLat: 53.1},
		{UWI: "200", WellType: models.WellTypeInjection, DeviationType: models.DeviationVertical, WellID: 3, PlotLon: -80.2, PlotLat: 53.2},
		{UWI: "300", WellType: models.WellTypeUnknown, DeviationType: models.DeviationUnknown, WellID: 4, PlotLon: -80.3, PlotLat: 53.3},
	}
}

func TestBuildWellMapGrouping(t *testing.T) {
	fig := BuildWellMap(sampleWells(), LabelModeLabels)

	// 每个 (类型, 井身) 组合一条系列
	require.Len(t, fig.Data, 3)
	assert.Equal(t, "Production, Horizontal", fig.Data[0].Name)
	assert.Len(t, fig.Data[0].X, 2)
	assert.Equal(t, "Injection, Vertical", fig.Data[1].Name)
	assert.Equal(t, "Unknown, Unknown", fig.Data[2].Name)

	assert.Equal(t, "blue", fig.Data[0].Marker.Color)
	assert.Equal(t, "red", fig.Data[1].Marker.Color)
	assert.Equal(t, "gray", fig.Data[2].Marker.Color)
}

func TestBuildWellMapVisibleLabels(t *testing.T) {
	fig := BuildWellMap(sampleWells(), LabelModeLabels)

	prod := fig.Data[0]
	assert.Equal(t, "markers+text", prod.Mode)
	assert.Equal(t, "top center", prod.TextPosition)
	assert.Equal(t, []string{"1", "2"}, prod.Text)
	assert.Empty(t, prod.HoverText)
}

func TestBuildWellMapHoverTooltips(t *testing.T) {
	fig := BuildWellMap(sampleWells(), LabelModeHover)

	prod := fig.Data[0]
	assert.Equal(t, "markers", prod.Mode)
	assert.Empty(t, prod.Text)
	require.Len(t, prod.HoverText, 2)
	assert.Contains(t, prod.HoverText[0], "Well_ID: 1")
	assert.Contains(t, prod.HoverText[0], "UWI: 100")
}

func TestBuildWellMapLayout(t *testing.T) {
	fig := BuildWellMap(sampleWells(), LabelModeLabels)

	assert.Equal(t, "Well Location Grid Map", fig.Layout.Title)
	require.NotNil(t, fig.Layout.YAxis)
	// 经纬度等比例，无零线
	assert.Equal(t, "x", fig.Layout.YAxis.ScaleAnchor)
	assert.Equal(t, 1.0, fig.Layout.YAxis.ScaleRatio)
	assert.False(t, *fig.Layout.XAxis.ZeroLine)
	assert.True(t, *fig.Layout.XAxis.ShowGrid)
	require.NotNil(t, fig.Layout.Legend)
	assert.Equal(t, "Well Type / Deviation", fig.Layout.Legend.Title.Text)
}
