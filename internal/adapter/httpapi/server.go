package httpapi

import (
	"context"
	"errors"
	"net/http"

	"kiroua/config"
	"kiroua/fingerprint"
	"kiroua/internal/adapter/httpapi/handlers"
	"kiroua/internal/adapter/httpapi/middleware"
	"kiroua/internal/adapter/upstream/shared"
	"kiroua/logger"
	"kiroua/utils"

	"github.com/gin-gonic/gin"
)

type Options struct {
	Port          string
	ClientToken   string
	Generator     *fingerprint.Generator
	HeaderManager *shared.HeaderManager
}

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	opts       Options
}

func New(opts Options) (*Server, error) {
	if opts.HeaderManager == nil {
		return nil, errors.New("HeaderManager 未初始化")
	}
	if opts.Port == "" {
		opts.Port = config.DefaultPort
	}

	gin.SetMode(utils.GetEnvWithDefault("GIN_MODE", gin.ReleaseMode))

	engine := gin.New()
	if utils.IsDebugMode() {
		engine.Use(gin.Logger())
	}
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.CORSMiddleware())

	if opts.ClientToken != "" {
		logger.Info("/v1 认证已启用")
	} else {
		logger.Warn("未设置 KIRO_CLIENT_TOKEN，/v1 端点无需认证")
	}
	engine.Use(middleware.PathBasedAuthMiddleware(opts.ClientToken, []string{"/v1"}))

	handler := handlers.New(handlers.Options{
		Generator:     opts.Generator,
		HeaderManager: opts.HeaderManager,
	})
	handler.Register(engine)

	httpSrv := &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           engine,
		ReadHeaderTimeout: config.ServerReadHeaderTimeout,
	}

	return &Server{
		engine:     engine,
		httpServer: httpSrv,
		opts:       opts,
	}, nil
}

func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("启动HTTP服务器", logger.String("port", s.opts.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// Handler 返回底层 http.Handler，便于测试
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Port() string {
	return s.opts.Port
}
