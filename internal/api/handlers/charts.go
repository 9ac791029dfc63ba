package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChartsRequest 历史图请求：用户从候选 UWI 中勾选的井
type ChartsRequest struct {
	ProdWells []string `json:"prod_wells"`
	InjWells  []string `json:"inj_wells"`
}

// BuildCharts 构建选中井的历史图
// POST /api/charts
// 不校验选中的 UWI 是否存在于数据表，缺失的井输出空系列
func (h *Handler) BuildCharts(c *gin.Context) {
	var req ChartsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	figures, err := h.dashboard.Charts(req.ProdWells, req.InjWells)
	if err != nil {
		h.renderDashboardError(c, err, "Failed to build charts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": figures})
}
