package service

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/dataset"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/models"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func wellList(rows ...dataset.WellListRow) *dataset.WellList {
	return &dataset.WellList{Rows: rows, HasDeviation: true}
}

func production(uwis ...string) *dataset.Production {
	p := &dataset.Production{UWIs: uwis}
	for _, u := range uwis {
		p.Rows = append(p.Rows, dataset.ProductionRow{UWI: u})
	}
	return p
}

func injection(uwis ...string) *dataset.Injection {
	inj := &dataset.Injection{UWIs: uwis}
	for _, u := range uwis {
		inj.Rows = append(inj.Rows, dataset.InjectionRow{UWI: u})
	}
	return inj
}

func TestPrepareWellsClassification(t *testing.T) {
	wl := wellList(
		dataset.WellListRow{UWI: "A", Longitude: -80.0, Latitude: 53.0},
		dataset.WellListRow{UWI: "B", Longitude: -80.1, Latitude: 53.1},
		dataset.WellListRow{UWI: "C", Longitude: -80.2, Latitude: 53.2},
		dataset.WellListRow{UWI: "D", Longitude: -80.3, Latitude: 53.3},
	)

	wells := PrepareWells(wl, production("A", "C"), injection("B", "C"), true, testRNG())
	require.Len(t, wells, 4)

	assert.Equal(t, models.WellTypeProduction, wells[0].WellType)
	assert.Equal(t, models.WellTypeInjection, wells[1].WellType)
	// 同时出现在两个集合中的井归为 Injection（注水覆盖在后）
	assert.Equal(t, models.WellTypeInjection, wells[2].WellType)
	assert.Equal(t, models.WellTypeUnknown, wells[3].WellType)

	// Well_ID 按行序 1..N
	for i, w := range wells {
		assert.Equal(t, i+1, w.WellID)
	}
}

func TestPrepareWellsDeviation(t *testing.T) {
	wl := wellList(
		dataset.WellListRow{UWI: "A", DeviationInd: "Hz"},
		dataset.WellListRow{UWI: "B", Longitude: 1, DeviationInd: "  horizontal "},
		dataset.WellListRow{UWI: "C", Longitude: 2, DeviationInd: "V"},
		dataset.WellListRow{UWI: "D", Longitude: 3, DeviationInd: ""},
	)

	wells := PrepareWells(wl, production(), injection(), true, testRNG())

	assert.Equal(t, models.DeviationHorizontal, wells[0].DeviationType)
	assert.Equal(t, models.DeviationHorizontal, wells[1].DeviationType)
	assert.Equal(t, models.DeviationVertical, wells[2].DeviationType)
	assert.Equal(t, models.DeviationVertical, wells[3].DeviationType)
}

func TestPrepareWellsDeviationColumnAbsent(t *testing.T) {
	wl := &dataset.WellList{
		Rows: []dataset.WellListRow{
			{UWI: "A"},
			{UWI: "B", Longitude: 1},
		},
		HasDeviation: false,
	}

	wells := PrepareWells(wl, production(), injection(), true, testRNG())
	for _, w := range wells {
		assert.Equal(t, models.DeviationUnknown, w.DeviationType)
	}
}

func TestPrepareWellsJitterDuplicates(t *testing.T) {
	wl := wellList(
		dataset.WellListRow{UWI: "A", Longitude: -80.0, Latitude: 53.0},
		dataset.WellListRow{UWI: "B", Longitude: -80.0, Latitude: 53.0},
		dataset.WellListRow{UWI: "C", Longitude: -81.0, Latitude: 54.0},
	)

	wells := PrepareWells(wl, production("A", "B", "C"), injection(), true, testRNG())

	// 重叠组内每口井都偏移，且互不相同
	assert.NotEqual(t, -80.0, wells[0].PlotLon)
	assert.NotEqual(t, 53.0, wells[0].PlotLat)
	assert.NotEqual(t, -80.0, wells[1].PlotLon)
	assert.NotEqual(t, 53.0, wells[1].PlotLat)
	assert.NotEqual(t, wells[0].PlotLon, wells[1].PlotLon)
	assert.NotEqual(t, wells[0].PlotLat, wells[1].PlotLat)

	for _, w := range wells[:2] {
		assert.LessOrEqual(t, math.Abs(w.PlotLon-(-80.0)), jitterRange)
		assert.LessOrEqual(t, math.Abs(w.PlotLat-53.0), jitterRange)
	}

	// 坐标唯一的井不动
	assert.Equal(t, -81.0, wells[2].PlotLon)
	assert.Equal(t, 54.0, wells[2].PlotLat)
}

func TestPrepareWellsJitterVariesPerRun(t *testing.T) {
	wl := wellList(
		dataset.WellListRow{UWI: "A", Longitude: -80.0, Latitude: 53.0},
		dataset.WellListRow{UWI: "B", Longitude: -80.0, Latitude: 53.0},
	)
	prod := production("A", "B")
	inj := injection()

	first := PrepareWells(wl, prod, inj, true, rand.New(rand.NewSource(1)))
	second := PrepareWells(wl, prod, inj, true, rand.New(rand.NewSource(2)))

	assert.NotEqual(t, first[0].PlotLon, second[0].PlotLon)
}

func TestPrepareWellsFilterUnknown(t *testing.T) {
	wl := wellList(
		dataset.WellListRow{UWI: "A", Longitude: -80.0, Latitude: 53.0},
		dataset.WellListRow{UWI: "B", Longitude: -80.1, Latitude: 53.1},
		dataset.WellListRow{UWI: "C", Longitude: -80.2, Latitude: 53.2},
	)

	wells := PrepareWells(wl, production("A"), injection("C"), false, testRNG())

	require.Len(t, wells, 2)
	assert.Equal(t, "A", wells[0].UWI)
	assert.Equal(t, "C", wells[1].UWI)
	// 过滤在编号之后，保留原 ID 不重排
	assert.Equal(t, 1, wells[0].WellID)
	assert.Equal(t, 3, wells[1].WellID)
}
