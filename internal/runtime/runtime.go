package runtime

import (
	"context"
	"fmt"

	"kiroua/config"
	"kiroua/fingerprint"
	"kiroua/internal/adapter/httpapi"
	"kiroua/internal/adapter/upstream/shared"
	"kiroua/internal/version"
	"kiroua/logger"
	"kiroua/utils"
)

type Options struct {
	Port        string
	ClientToken string
	KiroVersion string
}

type Runtime struct {
	server        *httpapi.Server
	generator     *fingerprint.Generator
	headerManager *shared.HeaderManager
}

// NewGenerator 根据 FINGERPRINT_SEED 选择随机源
// 设置了种子时使用可复现的随机源，仅用于调试
func NewGenerator() *fingerprint.Generator {
	seed, ok, err := config.FingerprintSeed()
	if err != nil {
		logger.Warn("FINGERPRINT_SEED 无法解析，使用默认随机源", logger.Err(err))
		return fingerprint.Default()
	}
	if !ok {
		return fingerprint.Default()
	}
	logger.Warn("使用固定种子生成身份头，输出可预测", logger.Int64("seed", seed))
	return fingerprint.New(utils.NewSeededSource(seed))
}

func New(opts Options) (*Runtime, error) {
	if opts.Port == "" {
		opts.Port = config.Port()
	}
	if opts.KiroVersion == "" {
		opts.KiroVersion = config.KiroVersion()
	}

	stealth := config.IsStealthModeEnabled()
	if stealth {
		logger.Info("Stealth 模式已启用，辅助请求头随机轮换")
	} else {
		logger.Info("Stealth 模式未启用，辅助请求头使用固定值")
	}

	generator := NewGenerator()
	headerManager := shared.NewHeaderManager(shared.Options{
		KiroVersion: opts.KiroVersion,
		Generator:   generator,
		Stealth:     stealth,
	})

	server, err := httpapi.New(httpapi.Options{
		Port:          opts.Port,
		ClientToken:   opts.ClientToken,
		Generator:     generator,
		HeaderManager: headerManager,
	})
	if err != nil {
		return nil, fmt.Errorf("创建HTTP服务器失败: %w", err)
	}

	return &Runtime{
		server:        server,
		generator:     generator,
		headerManager: headerManager,
	}, nil
}

func (a *Runtime) Run(ctx context.Context) error {
	logger.Info("启动"+version.GetVersionInfo(),
		logger.String("port", a.server.Port()),
		logger.String("kiro_version", a.headerManager.KiroVersion()),
		logger.String("sdk_version", fingerprint.SDKVersion))
	logger.Info("可用端点:")
	logger.Info("  GET  /health                    - 健康检查")
	logger.Info("  GET  /api/system/info           - 系统信息")
	logger.Info("  GET  /v1/identity               - 生成一组身份头")
	logger.Info("  GET  /v1/identity/batch         - 批量生成身份头")
	logger.Info("  GET  /v1/identity/request       - 预览上游请求头")
	logger.Info("  GET  /v1/policy                 - 字段随机化策略")
	logger.Info("按Ctrl+C停止服务器")

	return a.server.Start(ctx)
}

func (a *Runtime) HeaderManager() *shared.HeaderManager {
	return a.headerManager
}
