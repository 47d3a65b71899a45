package config

import "kiroua/utils"

var stealthModeEnv = "STEALTH_MODE"

// IsStealthModeEnabled 是否启用附加请求头轮换
// 身份头本身始终随机化，此开关只影响 Accept-Encoding / Accept-Language 等辅助头
func IsStealthModeEnabled() bool {
	return utils.GetEnvBool(stealthModeEnv)
}

// AcceptEncodings 隐身模式下 Accept-Encoding 的候选值
var AcceptEncodings = []string{
	"gzip, deflate, br",
	"gzip, deflate",
	"gzip",
	"br, gzip",
}

// AcceptLanguages 隐身模式下 Accept-Language 的候选值
var AcceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-US,en;q=0.8,zh-CN;q=0.6",
	"en-GB,en;q=0.7",
	"en-US,en;q=0.85",
}

const (
	DefaultAcceptEncoding = "gzip"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
)
