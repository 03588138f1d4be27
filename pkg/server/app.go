package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ShopPulse/internal/domain/repository"
	"ShopPulse/internal/usecase"
	"ShopPulse/pkg/cache"
	pkgch "ShopPulse/pkg/clickhouse"
	"ShopPulse/pkg/config"
	xhttp "ShopPulse/pkg/http"
	applogger "ShopPulse/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	loop       *usecase.RefreshLoop
	handlers   []xhttp.Handler
	chClient   *pkgch.Client
	redisCache *cache.RedisCache
	events     repository.PassEvents
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	loop *usecase.RefreshLoop,
	handlers []xhttp.Handler,
	chClient *pkgch.Client,
	redisCache *cache.RedisCache,
	events repository.PassEvents,
	log *applogger.Logger,
) *App {
	return &App{
		cfg:        cfg,
		loop:       loop,
		handlers:   handlers,
		chClient:   chClient,
		redisCache: redisCache,
		events:     events,
		logger:     log,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	}
	if a.cfg.Metrics.Enabled && a.cfg.Metrics.Path != "" {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handlers, opts...)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		a.loop.Run(ctx)
	}()

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("source", a.cfg.Source.Type))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	cancel()
	<-loopDone

	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	a.logger.RemoveCollector()

	if err := a.events.Close(); err != nil {
		a.logger.Warn("pass events close error", applogger.Error(err))
	}

	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.logger.Warn("redis close error", applogger.Error(err))
		}
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
