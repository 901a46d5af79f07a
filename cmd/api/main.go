package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	_ "github.com/xiebiao/marketplace/docs"
	"github.com/xiebiao/marketplace/internal/infrastructure/config"
	"github.com/xiebiao/marketplace/pkg/logger"
	"github.com/xiebiao/marketplace/pkg/metrics"
	"github.com/xiebiao/marketplace/pkg/tracing"
)

// @title                       Marketplace API
// @version                     1.0
// @description                 商品目录、评价与联系卖家
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zapLogger, syncLogger, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer syncLogger()

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	shutdownTracer := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		shutdownTracer, err = tracing.InitTracer(tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			Insecure:    true,
		})
		if err != nil {
			zapLogger.Fatal("init tracer failed", zap.Error(err))
		}
	}

	app, cleanup, err := InitializeApp(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("initialize app failed", zap.Error(err))
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("addr", server.Addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 先停止接收请求，再关闭依赖
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				zapLogger.Info("shutting down server")
				err := server.Shutdown(ctx)
				cleanup()
				return err
			},
			"tracer": shutdownTracer,
		},
	)

	exitCode := <-wait
	zapLogger.Info("server exited", zap.Int("code", exitCode))
	syncLogger()
	os.Exit(exitCode)
}
