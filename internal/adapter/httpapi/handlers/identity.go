package handlers

import (
	"net/http"
	"strconv"

	"kiroua/config"
	"kiroua/fingerprint"
	srvcontext "kiroua/internal/adapter/httpapi/context"
	logutil "kiroua/internal/adapter/httpapi/logging"
	"kiroua/internal/adapter/httpapi/support"
	"kiroua/logger"

	"github.com/gin-gonic/gin"
)

// resolveKiroVersion 优先使用查询参数 kiro_version，否则使用 HeaderManager 配置的版本
func (h *Handler) resolveKiroVersion(c *gin.Context) string {
	version, ok := c.GetQuery("kiro_version")
	if !ok {
		version = h.headerManager.KiroVersion()
	}
	srvcontext.SetKiroVersion(c, version)
	return version
}

// handleIdentity 生成一组身份头
func (h *Handler) handleIdentity(c *gin.Context) {
	version := h.resolveKiroVersion(c)
	identity := h.generator.BuildIdentityHeaders(version)

	logger.Debug("生成身份头", logutil.AddFields(c,
		logger.String("user_agent", identity.UserAgent))...)

	c.JSON(http.StatusOK, identity)
}

// handleIdentityBatch 生成多组相互独立的身份头
func (h *Handler) handleIdentityBatch(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count < 1 || count > config.MaxBatchSize {
		support.RespondError(c, http.StatusBadRequest, "count 必须是 1 到 %d 之间的整数", config.MaxBatchSize)
		return
	}

	version := h.resolveKiroVersion(c)
	items := make([]fingerprint.IdentityHeaders, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, h.generator.BuildIdentityHeaders(version))
	}

	logger.Debug("批量生成身份头", logutil.AddFields(c, logger.Int("count", count))...)

	c.JSON(http.StatusOK, gin.H{
		"kiro_version": version,
		"count":        count,
		"items":        items,
	})
}

// handleUpstreamRequest 返回上游请求将携带的完整请求头（不实际发送）
func (h *Handler) handleUpstreamRequest(c *gin.Context) {
	isStream := false
	if raw := c.Query("stream"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			support.RespondError(c, http.StatusBadRequest, "stream 参数无效: %s", raw)
			return
		}
		isStream = parsed
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, config.CodeWhispererURL, http.NoBody)
	if err != nil {
		logger.Error("构建上游请求失败", logutil.AddFields(c, logger.Err(err))...)
		support.RespondError(c, http.StatusInternalServerError, "构建上游请求失败: %v", err)
		return
	}
	srvcontext.SetKiroVersion(c, h.headerManager.KiroVersion())
	h.headerManager.Apply(req, isStream)

	headers := make(map[string]string, len(req.Header))
	for name := range req.Header {
		headers[name] = req.Header.Get(name)
	}

	c.JSON(http.StatusOK, gin.H{
		"method":  req.Method,
		"url":     req.URL.String(),
		"stream":  isStream,
		"headers": headers,
	})
}

// handlePolicy 返回字段随机化策略表
func (h *Handler) handlePolicy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sdk_version": fingerprint.SDKVersion,
		"agent_mode":  fingerprint.AgentMode,
		"fields":      fingerprint.FieldPolicies,
	})
}
