package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"layoutlens/internal/config"
	"layoutlens/internal/http/middleware"
	"layoutlens/internal/http/server"
	"layoutlens/internal/logging"
	"layoutlens/internal/otel"
	"layoutlens/internal/repository/memory"
	"layoutlens/internal/service"
)

// @title LayoutLens API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location(), cfg.LogLevel)
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// All project state lives in this store for the lifetime of the process
	projectRepo := memory.NewProjectMemory()
	projectSvc := service.NewProjectService(projectRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		middleware.NewProjectsGauge(projectRepo.Len),
	)

	app, err := server.New(cfg, server.Deps{
		Projects: projectSvc,
		Logger:   log,
		Registry: reg,
	})
	if err != nil {
		log.Fatal("failed to build app", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr()))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	tctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
}
