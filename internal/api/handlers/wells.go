package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/service"
)

// ListWells 获取分类后的井列表
// GET /api/wells?include_unknown=false
func (h *Handler) ListWells(c *gin.Context) {
	includeUnknown := boolQuery(c, "include_unknown", false)

	wells, err := h.dashboard.WellsTable(includeUnknown)
	if err != nil {
		h.renderDashboardError(c, err, "Failed to prepare wells")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": wells})
}

// GetWellMap 获取井位分布图
// GET /api/wells/map?include_unknown=false&label_mode=labels
// label_mode = hover | labels（默认 labels，常驻显示 Well_ID）
func (h *Handler) GetWellMap(c *gin.Context) {
	includeUnknown := boolQuery(c, "include_unknown", false)
	labelMode := c.DefaultQuery("label_mode", service.LabelModeLabels)
	if labelMode != service.LabelModeHover && labelMode != service.LabelModeLabels {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid label_mode"})
		return
	}

	fig, err := h.dashboard.WellMap(includeUnknown, labelMode)
	if err != nil {
		h.renderDashboardError(c, err, "Failed to build well map")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fig})
}

// GetWellOptions 获取多选控件候选 UWI
// GET /api/wells/options
func (h *Handler) GetWellOptions(c *gin.Context) {
	options, err := h.dashboard.WellOptions()
	if err != nil {
		h.renderDashboardError(c, err, "Failed to list well options")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": options})
}

// renderDashboardError 数据未齐全返回 409 提示，其余按服务器错误处理
func (h *Handler) renderDashboardError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, service.ErrNotReady) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error(logMsg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
}

func boolQuery(c *gin.Context, key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(c.DefaultQuery(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}
