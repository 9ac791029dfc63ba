package service

import (
	"math/rand"
	"strings"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/dataset"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/models"
)

// 重叠井位的随机偏移范围（度）
const jitterRange = 0.0003

// PrepareWells 生成分类后的井数据
// 步骤与展示逻辑保持一致：类型归属 → 井身类型 → Well_ID → 坐标偏移 → Unknown 过滤。
// 同时出现在生产和注水 UWI 集合中的井最终归为 Injection（注水覆盖在生产之后执行）。
// rng 由调用方注入，测试可固定种子复现偏移
func PrepareWells(wl *dataset.WellList, prod *dataset.Production, inj *dataset.Injection, includeUnknown bool, rng *rand.Rand) []models.Well {
	prodSet := prod.UWISet()
	injSet := inj.UWISet()

	wells := make([]models.Well, len(wl.Rows))
	for i, row := range wl.Rows {
		w := models.Well{
			UWI:           row.UWI,
			Longitude:     row.Longitude,
			Latitude:      row.Latitude,
			WellType:      models.WellTypeUnknown,
			DeviationType: models.DeviationUnknown,
			WellID:        i + 1,
			PlotLon:       row.Longitude,
			PlotLat:       row.Latitude,
		}
		if _, ok := prodSet[row.UWI]; ok {
			w.WellType = models.WellTypeProduction
		}
		if _, ok := injSet[row.UWI]; ok {
			w.WellType = models.WellTypeInjection
		}
		if wl.HasDeviation {
			w.DeviationType = deviationType(row.DeviationInd)
		}
		wells[i] = w
	}

	jitterDuplicates(wells, rng)

	if !includeUnknown {
		filtered := wells[:0]
		for _, w := range wells {
			if w.WellType != models.WellTypeUnknown {
				filtered = append(filtered, w)
			}
		}
		wells = filtered
	}
	return wells
}

// deviationType 井身指示符以 H 开头（忽略大小写和空白）视为水平井，否则为直井
func deviationType(ind string) string {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(ind)), "H") {
		return models.DeviationHorizontal
	}
	return models.DeviationVertical
}

// jitterDuplicates 对坐标完全相同的井组施加随机偏移
// 组内所有成员都偏移（不保留锚点），每次准备数据重新抽取
func jitterDuplicates(wells []models.Well, rng *rand.Rand) {
	type coord struct {
		lon, lat float64
	}
	counts := make(map[coord]int, len(wells))
	for _, w := range wells {
		counts[coord{w.Longitude, w.Latitude}]++
	}
	for i := range wells {
		if counts[coord{wells[i].Longitude, wells[i].Latitude}] > 1 {
			wells[i].PlotLon += jitter(rng)
			wells[i].PlotLat += jitter(rng)
		}
	}
}

// jitter 返回 [-jitterRange, jitterRange) 内的均匀随机偏移
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * jitterRange
}
