package models

// Figure 图表定义，前端交给 Plotly 直接渲染
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace 单条数据系列
// X/Y 使用 interface{}：历史图 x 为日期字符串（解析失败为 null，形成断点），
// 地图 x/y 为坐标浮点数
type Trace struct {
	Type         string        `json:"type"`
	Name         string        `json:"name,omitempty"`
	Mode         string        `json:"mode,omitempty"`
	X            []interface{} `json:"x"`
	Y            []interface{} `json:"y"`
	Text         []string      `json:"text,omitempty"`
	TextPosition string        `json:"textposition,omitempty"`
	HoverText    []string      `json:"hovertext,omitempty"`
	YAxis        string        `json:"yaxis,omitempty"` // "y2" 表示使用副轴
	Opacity      float64       `json:"opacity,omitempty"`
	Line         *LineStyle    `json:"line,omitempty"`
	Marker       *MarkerStyle  `json:"marker,omitempty"`
}

// LineStyle 线条样式
type LineStyle struct {
	Color string `json:"color,omitempty"`
}

// MarkerStyle 标记样式
type MarkerStyle struct {
	Color  string `json:"color,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Layout 图表布局
type Layout struct {
	Title   string  `json:"title,omitempty"`
	BarMode string  `json:"barmode,omitempty"` // "overlay" 柱状图叠加
	XAxis   *Axis   `json:"xaxis,omitempty"`
	YAxis   *Axis   `json:"yaxis,omitempty"`
	YAxis2  *Axis   `json:"yaxis2,omitempty"`
	Legend  *Legend `json:"legend,omitempty"`
}

// Axis 坐标轴定义
type Axis struct {
	Title       string    `json:"title,omitempty"`
	ShowGrid    *bool     `json:"showgrid,omitempty"`
	ZeroLine    *bool     `json:"zeroline,omitempty"`
	Range       []float64 `json:"range,omitempty"`
	Overlaying  string    `json:"overlaying,omitempty"` // 副轴叠加在哪个轴上
	Side        string    `json:"side,omitempty"`
	ScaleAnchor string    `json:"scaleanchor,omitempty"` // 等比例坐标锚定
	ScaleRatio  float64   `json:"scaleratio,omitempty"`
}

// Legend 图例
type Legend struct {
	Title *LegendTitle `json:"title,omitempty"`
}

// LegendTitle 图例标题
type LegendTitle struct {
	Text string `json:"text,omitempty"`
}

// NamedFigure 带标识的图表，POST /api/charts 按展示顺序返回
type NamedFigure struct {
	Name   string  `json:"name"`
	Figure *Figure `json:"figure"`
}

// Bool 返回 bool 指针，供 Axis 的可选开关使用
func Bool(b bool) *bool {
	return &b
}
