package dataset

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CSV 列名常量（与上传文件表头一致）
const (
	ColUWI        = "UWI"
	ColLongitude  = "Longitude NAD 83"
	ColLatitude   = "Latitude NAD 83"
	ColDeviation  = "Deviation Ind"
	ColDate       = "Date"
	ColOilM3      = "Oil M3"
	ColWaterM3    = "Water M3"
	ColGasE3M3    = "Gas E3M3"
	ColWaterInjM3 = "Water Inj M3"
)

// WellList 解析后的井列表
type WellList struct {
	Rows         []WellListRow
	HasDeviation bool // 源文件是否带 Deviation Ind 列
}

// WellListRow 井列表单行
type WellListRow struct {
	UWI          string
	Longitude    float64
	Latitude     float64
	DeviationInd string
}

// Production 解析后的生产历史
type Production struct {
	Rows []ProductionRow
	UWIs []string // 去重排序后的 UWI，供多选控件使用
}

// ProductionRow 生产历史单行
type ProductionRow struct {
	UWI     string
	Date    string
	OilM3   float64
	WaterM3 float64
	GasE3M3 float64
}

// Injection 解析后的注水历史
type Injection struct {
	Rows []InjectionRow
	UWIs []string
}

// InjectionRow 注水历史单行
type InjectionRow struct {
	UWI        string
	Date       string
	WaterInjM3 float64
}

// readErr 统一的文件读取错误格式（对用户展示）
func readErr(name string, cause error) error {
	return fmt.Errorf("Error reading file %s: %v", name, cause)
}

// readFrame 把上传内容解析为 dataframe，UWI 和日期强制按字符串读取
func readFrame(r io.Reader, name string, required []string) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, dataframe.WithTypes(map[string]series.Type{
		ColUWI:       series.String,
		ColDate:      series.String,
		ColDeviation: series.String,
	}))
	if df.Err != nil {
		return df, readErr(name, df.Err)
	}
	for _, col := range required {
		if !hasColumn(df, col) {
			return df, readErr(name, fmt.Errorf("missing column %q", col))
		}
	}
	return df, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// ReadWellList 解析井列表 CSV
func ReadWellList(r io.Reader, name string) (*WellList, error) {
	df, err := readFrame(r, name, []string{ColUWI, ColLongitude, ColLatitude})
	if err != nil {
		return nil, err
	}

	uwis := df.Col(ColUWI).Records()
	lons := df.Col(ColLongitude).Float()
	lats := df.Col(ColLatitude).Float()

	wl := &WellList{
		Rows:         make([]WellListRow, df.Nrow()),
		HasDeviation: hasColumn(df, ColDeviation),
	}

	var devs []string
	if wl.HasDeviation {
		devs = df.Col(ColDeviation).Records()
	}

	for i := range wl.Rows {
		row := WellListRow{
			UWI:       uwis[i],
			Longitude: lons[i],
			Latitude:  lats[i],
		}
		if devs != nil {
			row.DeviationInd = devs[i]
		}
		wl.Rows[i] = row
	}
	return wl, nil
}

// ReadProduction 解析生产历史 CSV
func ReadProduction(r io.Reader, name string) (*Production, error) {
	df, err := readFrame(r, name, []string{ColUWI, ColDate, ColOilM3, ColWaterM3, ColGasE3M3})
	if err != nil {
		return nil, err
	}

	uwis := df.Col(ColUWI).Records()
	dates := df.Col(ColDate).Records()
	oil := df.Col(ColOilM3).Float()
	water := df.Col(ColWaterM3).Float()
	gas := df.Col(ColGasE3M3).Float()

	p := &Production{Rows: make([]ProductionRow, df.Nrow())}
	for i := range p.Rows {
		p.Rows[i] = ProductionRow{
			UWI:     uwis[i],
			Date:    dates[i],
			OilM3:   oil[i],
			WaterM3: water[i],
			GasE3M3: gas[i],
		}
	}
	p.UWIs = distinctSorted(uwis)
	return p, nil
}

// ReadInjection 解析注水历史 CSV
func ReadInjection(r io.Reader, name string) (*Injection, error) {
	df, err := readFrame(r, name, []string{ColUWI, ColDate, ColWaterInjM3})
	if err != nil {
		return nil, err
	}

	uwis := df.Col(ColUWI).Records()
	dates := df.Col(ColDate).Records()
	water := df.Col(ColWaterInjM3).Float()

	inj := &Injection{Rows: make([]InjectionRow, df.Nrow())}
	for i := range inj.Rows {
		inj.Rows[i] = InjectionRow{
			UWI:        uwis[i],
			Date:       dates[i],
			WaterInjM3: water[i],
		}
	}
	inj.UWIs = distinctSorted(uwis)
	return inj, nil
}

// UWISet 返回 UWI 集合，分类器判断归属用
func (p *Production) UWISet() map[string]struct{} {
	return toSet(p.UWIs)
}

// UWISet 返回 UWI 集合
func (inj *Injection) UWISet() map[string]struct{} {
	return toSet(inj.UWIs)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func distinctSorted(values []string) []string {
	set := toSet(values)
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
