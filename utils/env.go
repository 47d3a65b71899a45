package utils

import (
	"os"
	"strings"
)

// IsDebugMode DEBUG、LOG_LEVEL=debug 或 GIN_MODE=debug 任一成立即为调试模式
func IsDebugMode() bool {
	if GetEnvBool("DEBUG") {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_LEVEL")), "debug") {
		return true
	}
	return os.Getenv("GIN_MODE") == "debug"
}

// GetEnvWithDefault 获取环境变量，为空时返回默认值
func GetEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool 获取布尔类型环境变量
// 接受的true值：true, 1, yes, on（不区分大小写）
func GetEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
