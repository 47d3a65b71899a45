package utils

import (
	"github.com/bytedance/sonic"
)

// SafeConfig 标准兼容的 sonic 配置（键排序、HTML 转义）
var SafeConfig = sonic.ConfigStd

// SafeMarshal JSON序列化
func SafeMarshal(v any) ([]byte, error) {
	return SafeConfig.Marshal(v)
}

// SafeUnmarshal JSON反序列化
func SafeUnmarshal(data []byte, v any) error {
	return SafeConfig.Unmarshal(data, v)
}

// MarshalIndent 带缩进的JSON序列化
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return SafeConfig.MarshalIndent(v, prefix, indent)
}
