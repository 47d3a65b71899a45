package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultKiroVersion 默认模拟的 Kiro IDE 版本
const DefaultKiroVersion = "0.8.0"

// DefaultPort 预览服务默认端口
const DefaultPort = "8080"

// CodeWhispererURL 身份头所针对的上游端点 (Kiro 0.8.0)
const CodeWhispererURL = "https://q.us-east-1.amazonaws.com/generateAssistantResponse"

var (
	kiroVersionEnv     = "KIRO_VERSION"
	fingerprintSeedEnv = "FINGERPRINT_SEED"
	portEnv            = "PORT"
	clientTokenEnv     = "KIRO_CLIENT_TOKEN"
)

// KiroVersion 返回 KIRO_VERSION，未设置时为 DefaultKiroVersion
func KiroVersion() string {
	if v := strings.TrimSpace(os.Getenv(kiroVersionEnv)); v != "" {
		return v
	}
	return DefaultKiroVersion
}

// FingerprintSeed 读取 FINGERPRINT_SEED
// 未设置时 ok=false；设置但无法解析时返回错误，调用方决定是否忽略
func FingerprintSeed() (seed int64, ok bool, err error) {
	raw := strings.TrimSpace(os.Getenv(fingerprintSeedEnv))
	if raw == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return seed, true, nil
}

// Port 返回 PORT，未设置时为 DefaultPort
func Port() string {
	if v := strings.TrimSpace(os.Getenv(portEnv)); v != "" {
		return v
	}
	return DefaultPort
}

// ClientToken 返回 KIRO_CLIENT_TOKEN，为空表示 /v1 不启用认证
func ClientToken() string {
	return os.Getenv(clientTokenEnv)
}
