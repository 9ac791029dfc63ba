package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWellList(t *testing.T) {
	csv := `UWI,Longitude NAD 83,Latitude NAD 83,Deviation Ind
100,-80.1,53.2,H
101,-80.2,53.3,V
`
	wl, err := ReadWellList(strings.NewReader(csv), "wells.csv")
	require.NoError(t, err)

	require.Len(t, wl.Rows, 2)
	assert.True(t, wl.HasDeviation)
	assert.Equal(t, "100", wl.Rows[0].UWI)
	assert.Equal(t, -80.1, wl.Rows[0].Longitude)
	assert.Equal(t, 53.2, wl.Rows[0].Latitude)
	assert.Equal(t, "H", wl.Rows[0].DeviationInd)
	assert.Equal(t, "V", wl.Rows[1].DeviationInd)
}

func TestReadWellListWithoutDeviation(t *testing.T) {
	csv := `UWI,Longitude NAD 83,Latitude NAD 83
100,-80.1,53.2
`
	wl, err := ReadWellList(strings.NewReader(csv), "wells.csv")
	require.NoError(t, err)

	assert.False(t, wl.HasDeviation)
	assert.Empty(t, wl.Rows[0].DeviationInd)
}

func TestReadWellListParseError(t *testing.T) {
	csv := "UWI,Longitude NAD 83,Latitude NAD 83\n\"broken"

	_, err := ReadWellList(strings.NewReader(csv), "wells.csv")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Error reading file wells.csv:"), err.Error())
}

func TestReadWellListMissingColumn(t *testing.T) {
	csv := `UWI,Latitude NAD 83
100,53.2
`
	_, err := ReadWellList(strings.NewReader(csv), "wells.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error reading file wells.csv:")
	assert.Contains(t, err.Error(), "Longitude NAD 83")
}

func TestReadProduction(t *testing.T) {
	csv := `UWI,Date,Oil M3,Water M3,Gas E3M3
101,2020-02-01,12.5,3.0,7.1
100,2020-01-01,10.0,5.0,2.0
100,2020-02-01,20.0,8.0,4.0
`
	p, err := ReadProduction(strings.NewReader(csv), "prod.csv")
	require.NoError(t, err)

	require.Len(t, p.Rows, 3)
	assert.Equal(t, "101", p.Rows[0].UWI)
	assert.Equal(t, 12.5, p.Rows[0].OilM3)
	assert.Equal(t, "2020-01-01", p.Rows[1].Date)

	// 去重并排序，供多选控件使用
	assert.Equal(t, []string{"100", "101"}, p.UWIs)
}

func TestReadProductionBadNumber(t *testing.T) {
	csv := `UWI,Date,Oil M3,Water M3,Gas E3M3
100,2020-01-01,n/a,5.0,2.0
`
	p, err := ReadProduction(strings.NewReader(csv), "prod.csv")
	require.NoError(t, err)

	// 无法解析的数值变成 NaN，后续绘图转为空点
	assert.True(t, math.IsNaN(p.Rows[0].OilM3))
	assert.Equal(t, 5.0, p.Rows[0].WaterM3)
}

func TestReadInjection(t *testing.T) {
	csv := `UWI,Date,Water Inj M3
200,2020-01-01,30.0
200,2020-02-01,45.5
`
	inj, err := ReadInjection(strings.NewReader(csv), "inj.csv")
	require.NoError(t, err)

	require.Len(t, inj.Rows, 2)
	assert.Equal(t, 45.5, inj.Rows[1].WaterInjM3)
	assert.Equal(t, []string{"200"}, inj.UWIs)

	set := inj.UWISet()
	_, ok := set["200"]
	assert.True(t, ok)
}
