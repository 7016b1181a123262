package server

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/binding"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/global/middleware"
	internalOtel "camp-signup-system/internal/global/otel"
	"camp-signup-system/internal/global/sentry"
	"camp-signup-system/internal/module"
	"camp-signup-system/tools"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	tools.PanicOnErr(sentry.Init())
	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		tools.PanicOnErr(internalOtel.Init(context.Background()))
	}

	database.Init()
	binding.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewEngine 组装中间件与所有模块路由
func NewEngine() *gin.Engine {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())
	if sentry.Enabled() {
		r.Use(sentry.Middleware(), middleware.SentryEnrichIP())
	}
	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	return r
}

// Run 启动服务，收到 SIGINT/SIGTERM 后优雅退出
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              config.Get().Host + ":" + config.Get().Port,
		Handler:           NewEngine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			tools.PanicOnErr(err)
		}
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if err := internalOtel.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shutdown TracerProvider", "error", err)
	}
	sentry.Flush(2 * time.Second)
	if err := database.Close(); err != nil {
		log.Error("Failed to close database", "error", err)
	}
}
