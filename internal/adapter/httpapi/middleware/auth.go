package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"kiroua/internal/adapter/httpapi/support"
	"kiroua/logger"

	"github.com/gin-gonic/gin"
)

// PathBasedAuthMiddleware 对 protectedPrefixes 下的路径校验 Bearer / x-api-key
// authToken 为空时不做校验
func PathBasedAuthMiddleware(authToken string, protectedPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if authToken == "" || !requiresAuth(path, protectedPrefixes) {
			c.Next()
			return
		}

		if !validateAPIKey(c, authToken) {
			c.Abort()
			return
		}

		c.Next()
	}
}

func requiresAuth(path string, protectedPrefixes []string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func validateAPIKey(c *gin.Context, authToken string) bool {
	provided := extractAPIKey(c)
	if provided == "" {
		logger.Warn("请求缺少Authorization或x-api-key头", logger.String("path", c.Request.URL.Path))
		support.RespondError(c, http.StatusUnauthorized, "缺少认证信息")
		return false
	}

	if subtle.ConstantTimeCompare([]byte(provided), []byte(authToken)) != 1 {
		logger.Warn("authToken验证失败",
			logger.String("provided_suffix", maskTokenSuffix(provided)))
		support.RespondError(c, http.StatusUnauthorized, "认证失败")
		return false
	}

	return true
}

// maskTokenSuffix 只显示token的最后4位
func maskTokenSuffix(token string) string {
	if len(token) <= 4 {
		return "***"
	}
	return "***" + token[len(token)-4:]
}

func extractAPIKey(c *gin.Context) string {
	if apiKey := c.GetHeader("Authorization"); apiKey != "" {
		return strings.TrimPrefix(apiKey, "Bearer ")
	}
	return c.GetHeader("x-api-key")
}
