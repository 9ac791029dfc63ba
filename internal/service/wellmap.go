package service

import (
	"fmt"
	"strconv"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/models"
)

// 地图标签显示模式
const (
	LabelModeHover  = "hover"  // 悬停提示显示 Well_ID 和 UWI
	LabelModeLabels = "labels" // 在标记上方常驻显示 Well_ID（默认）
)

// 井类型固定配色
var wellTypeColors = map[string]string{
	models.WellTypeProduction: "blue",
	models.WellTypeInjection:  "red",
	models.WellTypeUnknown:    "gray",
}

// 井身类型对应的标记形状
var deviationSymbols = map[string]string{
	models.DeviationHorizontal: "circle",
	models.DeviationVertical:   "diamond",
	models.DeviationUnknown:    "square",
}

// BuildWellMap 构建井位分布图
// 每个 (井类型, 井身类型) 组合一条散点系列，颜色按类型、形状按井身
func BuildWellMap(wells []models.Well, labelMode string) *models.Figure {
	type group struct {
		wellType  string
		deviation string
	}

	var order []group
	traces := make(map[group]*models.Trace)

	for _, w := range wells {
		g := group{w.WellType, w.DeviationType}
		tr, ok := traces[g]
		if !ok {
			tr = &models.Trace{
				Type: "scatter",
				Name: fmt.Sprintf("%s, %s", g.wellType, g.deviation),
				Mode: "markers",
				Marker: &models.MarkerStyle{
					Color:  wellTypeColors[g.wellType],
					Symbol: deviationSymbols[g.deviation],
				},
			}
			if labelMode == LabelModeLabels {
				tr.Mode = "markers+text"
				tr.TextPosition = "top center"
			}
			traces[g] = tr
			order = append(order, g)
		}

		tr.X = append(tr.X, w.PlotLon)
		tr.Y = append(tr.Y, w.PlotLat)
		if labelMode == LabelModeHover {
			tr.HoverText = append(tr.HoverText, fmt.Sprintf("Well_ID: %d<br>UWI: %s", w.WellID, w.UWI))
		} else {
			tr.Text = append(tr.Text, strconv.Itoa(w.WellID))
		}
	}

	fig := &models.Figure{Data: make([]models.Trace, 0, len(order))}
	for _, g := range order {
		fig.Data = append(fig.Data, *traces[g])
	}

	fig.Layout = models.Layout{
		Title: "Well Location Grid Map",
		XAxis: &models.Axis{
			Title:    "Longitude",
			ShowGrid: models.Bool(true),
			ZeroLine: models.Bool(false),
		},
		YAxis: &models.Axis{
			Title:       "Latitude",
			ShowGrid:    models.Bool(true),
			ZeroLine:    models.Bool(false),
			ScaleAnchor: "x", // 经纬度等比例显示
			ScaleRatio:  1,
		},
		Legend: &models.Legend{Title: &models.LegendTitle{Text: "Well Type / Deviation"}},
	}
	return fig
}
