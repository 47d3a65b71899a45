package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"kiroua/config"
	"kiroua/internal/runtime"
	"kiroua/logger"
	"kiroua/utils"

	"github.com/joho/godotenv"
)

const usage = `用法:
  kiroua [serve] [port]        启动身份头预览服务
  kiroua print [kiro_version]  输出一组身份头 (JSON)
`

func main() {
	// .env 文件可选，容器环境通过环境变量注入
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env 文件不存在，使用进程环境变量")
	} else {
		logger.Info("已从 .env 文件加载配置")
	}

	logger.Reinitialize()

	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		serve(args)
	case "print":
		if err := printIdentity(os.Stdout, args); err != nil {
			logger.Error("输出身份头失败", logger.Err(err))
			os.Exit(1)
		}
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		// 兼容 kiroua <port>
		serve(append([]string{cmd}, args...))
	}
}

func serve(args []string) {
	options := runtime.Options{
		ClientToken: config.ClientToken(),
	}
	if len(args) > 0 {
		options.Port = args[0]
	}

	application, err := runtime.New(options)
	if err != nil {
		logger.Error("应用初始化失败", logger.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("服务器运行失败", logger.Err(err))
		os.Exit(1)
	}
}

func printIdentity(w io.Writer, args []string) error {
	version := config.KiroVersion()
	if len(args) > 0 {
		version = args[0]
	}

	identity := runtime.NewGenerator().BuildIdentityHeaders(version)
	data, err := utils.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化身份头失败: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
