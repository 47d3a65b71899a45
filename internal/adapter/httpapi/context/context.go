package context

import "github.com/gin-gonic/gin"

const (
	requestIDKey   = "request_id"
	kiroVersionKey = "kiro_version"
)

func SetRequestID(c *gin.Context, id string) {
	c.Set(requestIDKey, id)
	c.Writer.Header().Set("X-Request-ID", id)
}

func GetRequestID(c *gin.Context) string {
	return getString(c, requestIDKey)
}

// SetKiroVersion 记录本次请求解析出的 Kiro 版本，便于日志关联
func SetKiroVersion(c *gin.Context, version string) {
	c.Set(kiroVersionKey, version)
}

func GetKiroVersion(c *gin.Context) string {
	return getString(c, kiroVersionKey)
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
