package models

// 井类型常量
const (
	WellTypeProduction = "Production"
	WellTypeInjection  = "Injection"
	WellTypeUnknown    = "Unknown"
)

// 井身类型常量
const (
	DeviationHorizontal = "Horizontal"
	DeviationVertical   = "Vertical"
	DeviationUnknown    = "Unknown"
)

// Well 分类后的井数据（地图与表格展示用）
type Well struct {
	UWI           string  `json:"uwi"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
	WellType      string  `json:"well_type"`      // Production / Injection / Unknown
	DeviationType string  `json:"deviation_type"` // Horizontal / Vertical / Unknown
	WellID        int     `json:"well_id"`        // 按行序分配，从 1 开始
	PlotLon       float64 `json:"plot_lon"`       // 展示坐标（重叠井位带随机偏移）
	PlotLat       float64 `json:"plot_lat"`
}
