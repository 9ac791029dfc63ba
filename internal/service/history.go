package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/dataset"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/models"
)

// 首井高亮色
const (
	oilHighlight = "brown"
	gasHighlight = "green"
	injHighlight = "blue"
)

// 日期解析候选格式，全部失败的点输出 null 形成断点
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
	"Jan 2006",
}

// BuildWaterInjProd 注水量 vs 产水量历史
// 产水为叠加柱状图（副轴），注水为折线（主轴），双轴共享量程
func BuildWaterInjProd(prod *dataset.Production, inj *dataset.Injection, prodWells, injWells []string) *models.Figure {
	fig := &models.Figure{Data: []models.Trace{}}

	for _, well := range prodWells {
		rows := prodRowsFor(prod, well)
		fig.Data = append(fig.Data, models.Trace{
			Type:  "bar",
			Name:  fmt.Sprintf("Water Production from well %s", well),
			X:     prodDates(rows),
			Y:     prodValues(rows, func(r dataset.ProductionRow) float64 { return r.WaterM3 }),
			YAxis: "y2",
		})
	}

	for _, well := range injWells {
		rows := injRowsFor(inj, well)
		fig.Data = append(fig.Data, models.Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: fmt.Sprintf("Water Injection into Well %s", well),
			X:    injDates(rows),
			Y:    injValues(rows),
		})
	}

	maxVal := maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.WaterM3 })
	maxVal = math.Max(maxVal, maxInj(inj, injWells))

	fig.Layout = historyLayout("Water Injection vs Water Production History",
		"Water Injection M3", "Water Production M3", maxVal)
	fig.Layout.BarMode = "overlay"
	return fig
}

// BuildOilInjProd 注水量 vs 产油量历史
// 两侧均为折线：首口生产井棕色、首口注水井蓝色，其余井使用默认自动配色
func BuildOilInjProd(prod *dataset.Production, inj *dataset.Injection, prodWells, injWells []string) *models.Figure {
	fig := &models.Figure{Data: []models.Trace{}}

	for i, well := range prodWells {
		rows := prodRowsFor(prod, well)
		tr := models.Trace{
			Type:  "scatter",
			Mode:  "lines+markers",
			Name:  fmt.Sprintf("Oil Production from well %s", well),
			X:     prodDates(rows),
			Y:     prodValues(rows, func(r dataset.ProductionRow) float64 { return r.OilM3 }),
			YAxis: "y2",
		}
		if i == 0 {
			tr.Line = &models.LineStyle{Color: oilHighlight}
		}
		fig.Data = append(fig.Data, tr)
	}

	for j, well := range injWells {
		rows := injRowsFor(inj, well)
		tr := models.Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: fmt.Sprintf("Water Injection into Well %s", well),
			X:    injDates(rows),
			Y:    injValues(rows),
		}
		if j == 0 {
			tr.Line = &models.LineStyle{Color: injHighlight}
		}
		fig.Data = append(fig.Data, tr)
	}

	maxVal := maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.OilM3 })
	maxVal = math.Max(maxVal, maxInj(inj, injWells))

	fig.Layout = historyLayout("Water Injection vs Oil Production History",
		"Water Injection M3", "Oil Production M3", maxVal)
	return fig
}

// BuildGasInjProd 注水量 vs 产气量历史
func BuildGasInjProd(prod *dataset.Production, inj *dataset.Injection, prodWells, injWells []string) *models.Figure {
	fig := &models.Figure{Data: []models.Trace{}}

	for i, well := range prodWells {
		rows := prodRowsFor(prod, well)
		tr := models.Trace{
			Type:  "bar",
			Name:  fmt.Sprintf("Gas Production from well %s", well),
			X:     prodDates(rows),
			Y:     prodValues(rows, func(r dataset.ProductionRow) float64 { return r.GasE3M3 }),
			YAxis: "y2",
		}
		if i == 0 {
			tr.Marker = &models.MarkerStyle{Color: gasHighlight}
		}
		fig.Data = append(fig.Data, tr)
	}

	for _, well := range injWells {
		rows := injRowsFor(inj, well)
		fig.Data = append(fig.Data, models.Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: fmt.Sprintf("Water Injection into Well %s", well),
			X:    injDates(rows),
			Y:    injValues(rows),
		})
	}

	maxVal := maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.GasE3M3 })
	maxVal = math.Max(maxVal, maxInj(inj, injWells))

	fig.Layout = historyLayout("Water Injection vs Gas Production History",
		"Water Injection M3", "Gas Production M3", maxVal)
	fig.Layout.BarMode = "overlay"
	return fig
}

// BuildOilWaterProd 产油 vs 产水历史
// 每口井一条油线（主轴）加一条半透明水柱（副轴）；仅选中一口井时油线棕色高亮
func BuildOilWaterProd(prod *dataset.Production, prodWells []string) *models.Figure {
	fig := &models.Figure{Data: []models.Trace{}}

	for _, well := range prodWells {
		rows := prodRowsFor(prod, well)

		oil := models.Trace{
			Type:  "scatter",
			Mode:  "lines+markers",
			Name:  fmt.Sprintf("Oil Production %s", well),
			X:     prodDates(rows),
			Y:     prodValues(rows, func(r dataset.ProductionRow) float64 { return r.OilM3 }),
			YAxis: "y1",
		}
		if len(prodWells) == 1 {
			oil.Line = &models.LineStyle{Color: oilHighlight}
		}
		fig.Data = append(fig.Data, oil)

		fig.Data = append(fig.Data, models.Trace{
			Type:    "bar",
			Name:    fmt.Sprintf("Water Production %s", well),
			X:       prodDates(rows),
			Y:       prodValues(rows, func(r dataset.ProductionRow) float64 { return r.WaterM3 }),
			YAxis:   "y2",
			Opacity: 0.5,
		})
	}

	maxVal := math.Max(
		maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.OilM3 }),
		maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.WaterM3 }),
	)

	fig.Layout = historyLayout("Oil vs Water Production History",
		"Oil Production M3", "Water Production M3", maxVal)
	fig.Layout.BarMode = "overlay"
	return fig
}

// BuildGasWaterProd 产气 vs 产水历史
func BuildGasWaterProd(prod *dataset.Production, prodWells []string) *models.Figure {
	fig := &models.Figure{Data: []models.Trace{}}

	for i, well := range prodWells {
		rows := prodRowsFor(prod, well)

		gas := models.Trace{
			Type:  "scatter",
			Mode:  "lines+markers",
			Name:  fmt.Sprintf("Gas Production %s", well),
			X:     prodDates(rows),
			Y:     prodValues(rows, func(r dataset.ProductionRow) float64 { return r.GasE3M3 }),
			YAxis: "y1",
		}
		if i == 0 {
			gas.Line = &models.LineStyle{Color: gasHighlight}
		}
		fig.Data = append(fig.Data, gas)

		fig.Data = append(fig.Data, models.Trace{
			Type:    "bar",
			Name:    fmt.Sprintf("Water Production %s", well),
			X:       prodDates(rows),
			Y:       prodValues(rows, func(r dataset.ProductionRow) float64 { return r.WaterM3 }),
			YAxis:   "y2",
			Opacity: 0.5,
		})
	}

	maxVal := math.Max(
		maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.GasE3M3 }),
		maxProd(prod, prodWells, func(r dataset.ProductionRow) float64 { return r.WaterM3 }),
	)

	fig.Layout = historyLayout("Gas vs Water Production History",
		"Gas Production M3", "Water Production M3", maxVal)
	fig.Layout.BarMode = "overlay"
	return fig
}

// historyLayout 历史图通用布局：双 y 轴共享 [0, maxVal] 量程
func historyLayout(title, yTitle, y2Title string, maxVal float64) models.Layout {
	return models.Layout{
		Title: title,
		XAxis: &models.Axis{Title: "Date (month)"},
		YAxis: &models.Axis{
			Title: yTitle,
			Range: []float64{0, maxVal},
		},
		YAxis2: &models.Axis{
			Title:      y2Title,
			Overlaying: "y",
			Side:       "right",
			Range:      []float64{0, maxVal},
		},
	}
}

func prodRowsFor(p *dataset.Production, uwi string) []dataset.ProductionRow {
	var rows []dataset.ProductionRow
	for _, r := range p.Rows {
		if r.UWI == uwi {
			rows = append(rows, r)
		}
	}
	return rows
}

func injRowsFor(inj *dataset.Injection, uwi string) []dataset.InjectionRow {
	var rows []dataset.InjectionRow
	for _, r := range inj.Rows {
		if r.UWI == uwi {
			rows = append(rows, r)
		}
	}
	return rows
}

func prodDates(rows []dataset.ProductionRow) []interface{} {
	xs := make([]interface{}, len(rows))
	for i, r := range rows {
		xs[i] = parseDate(r.Date)
	}
	return xs
}

func injDates(rows []dataset.InjectionRow) []interface{} {
	xs := make([]interface{}, len(rows))
	for i, r := range rows {
		xs[i] = parseDate(r.Date)
	}
	return xs
}

// parseDate 按候选格式解析日期，失败返回 nil（图上形成断点而非报错）
func parseDate(raw string) interface{} {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return nil
}

func prodValues(rows []dataset.ProductionRow, pick func(dataset.ProductionRow) float64) []interface{} {
	ys := make([]interface{}, len(rows))
	for i, r := range rows {
		ys[i] = floatValue(pick(r))
	}
	return ys
}

func injValues(rows []dataset.InjectionRow) []interface{} {
	ys := make([]interface{}, len(rows))
	for i, r := range rows {
		ys[i] = floatValue(r.WaterInjM3)
	}
	return ys
}

// floatValue NaN 转为 null，JSON 序列化不接受 NaN
func floatValue(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// maxProd 选中生产井的指定序列最大值，NaN 跳过，无数据返回 0
func maxProd(p *dataset.Production, wells []string, pick func(dataset.ProductionRow) float64) float64 {
	selected := make(map[string]struct{}, len(wells))
	for _, w := range wells {
		selected[w] = struct{}{}
	}
	maxVal := 0.0
	for _, r := range p.Rows {
		if _, ok := selected[r.UWI]; !ok {
			continue
		}
		if v := pick(r); !math.IsNaN(v) && v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// maxInj 选中注水井的注水量最大值
func maxInj(inj *dataset.Injection, wells []string) float64 {
	selected := make(map[string]struct{}, len(wells))
	for _, w := range wells {
		selected[w] = struct{}{}
	}
	maxVal := 0.0
	for _, r := range inj.Rows {
		if _, ok := selected[r.UWI]; !ok {
			continue
		}
		if !math.IsNaN(r.WaterInjM3) && r.WaterInjM3 > maxVal {
			maxVal = r.WaterInjM3
		}
	}
	return maxVal
}
