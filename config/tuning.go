package config

import "time"

// Tuning 预览服务调优参数
const (
	// ServerReadHeaderTimeout 读取请求头超时
	ServerReadHeaderTimeout = 10 * time.Second

	// ServerShutdownTimeout 优雅关闭等待时间
	ServerShutdownTimeout = 5 * time.Second

	// MaxBatchSize /v1/identity/batch 单次最多生成的身份头数量
	MaxBatchSize = 100
)
