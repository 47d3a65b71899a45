package logging

import (
	srvcontext "kiroua/internal/adapter/httpapi/context"
	"kiroua/logger"

	"github.com/gin-gonic/gin"
)

// AddFields 在日志字段前附加 request_id / kiro_version
func AddFields(c *gin.Context, fields ...logger.Field) []logger.Field {
	rid := srvcontext.GetRequestID(c)
	ver := srvcontext.GetKiroVersion(c)
	out := make([]logger.Field, 0, len(fields)+2)
	if rid != "" {
		out = append(out, logger.String("request_id", rid))
	}
	if ver != "" {
		out = append(out, logger.String("kiro_version", ver))
	}
	out = append(out, fields...)
	return out
}
