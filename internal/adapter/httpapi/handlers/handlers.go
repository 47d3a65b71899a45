package handlers

import (
	"net/http"

	"kiroua/fingerprint"
	logutil "kiroua/internal/adapter/httpapi/logging"
	"kiroua/internal/adapter/httpapi/support"
	"kiroua/internal/adapter/upstream/shared"
	"kiroua/logger"

	"github.com/gin-gonic/gin"
)

type Options struct {
	Generator     *fingerprint.Generator
	HeaderManager *shared.HeaderManager
}

type Handler struct {
	generator     *fingerprint.Generator
	headerManager *shared.HeaderManager
}

func New(opts Options) *Handler {
	if opts.Generator == nil {
		opts.Generator = fingerprint.Default()
	}
	if opts.HeaderManager == nil {
		opts.HeaderManager = shared.NewHeaderManager(shared.Options{Generator: opts.Generator})
	}
	return &Handler{
		generator:     opts.Generator,
		headerManager: opts.HeaderManager,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	// 健康检查端点（不需要认证）
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/api/system/info", h.handleGetSystemInfo)

	v1 := r.Group("/v1")
	v1.GET("/identity", h.handleIdentity)
	v1.GET("/identity/batch", h.handleIdentityBatch)
	v1.GET("/identity/request", h.handleUpstreamRequest)
	v1.GET("/policy", h.handlePolicy)

	r.NoRoute(func(c *gin.Context) {
		logger.Warn("访问未知端点",
			logutil.AddFields(c,
				logger.String("path", c.Request.URL.Path),
				logger.String("method", c.Request.Method),
			)...)
		support.RespondError(c, http.StatusNotFound, "未找到端点 %s", c.Request.URL.Path)
	})
}
