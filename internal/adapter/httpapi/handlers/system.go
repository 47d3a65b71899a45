package handlers

import (
	"net/http"
	"os"

	"kiroua/internal/version"

	"github.com/gin-gonic/gin"
)

// handleGetSystemInfo 获取系统信息
func (h *Handler) handleGetSystemInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":         version.ProjectName,
		"version":      version.Version,
		"gin_mode":     os.Getenv("GIN_MODE"),
		"kiro_version": h.headerManager.KiroVersion(),
		"stealth":      h.headerManager.Stealth(),
	})
}
