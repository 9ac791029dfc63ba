package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/service"
)

// UploadDataset 上传数据集
// POST /api/datasets/:kind (kind = wells | production | injection)
// multipart 字段名 file；解析失败返回 400 和面向用户的错误信息
func (h *Handler) UploadDataset(c *gin.Context) {
	kind := c.Param("kind")
	switch kind {
	case service.KindWells, service.KindProduction, service.KindInjection:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dataset kind"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open upload", zap.Error(err), zap.String("file", fileHeader.Filename))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	if err := h.dashboard.AttachDataset(kind, f, fileHeader.Filename); err != nil {
		h.logger.Warn("Failed to parse dataset",
			zap.String("kind", kind),
			zap.String("file", fileHeader.Filename),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dataset uploaded",
		"kind":    kind,
		"file":    fileHeader.Filename,
		"status":  h.dashboard.Status(),
	})
}

// ResetDatasets 清空工作区
// DELETE /api/datasets
func (h *Handler) ResetDatasets(c *gin.Context) {
	h.dashboard.Reset()
	c.JSON(http.StatusOK, gin.H{
		"message": "Workspace reset",
		"status":  h.dashboard.Status(),
	})
}

// GetStatus 获取工作区状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.dashboard.Status()})
}
