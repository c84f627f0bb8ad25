package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/DevelopLee20/Nara-Chart/internal/service/cache"
	"github.com/DevelopLee20/Nara-Chart/internal/usecase"
	"github.com/DevelopLee20/Nara-Chart/pkg/config"
	xhttp "github.com/DevelopLee20/Nara-Chart/pkg/http"
	applogger "github.com/DevelopLee20/Nara-Chart/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP server, the
// filter-option refresher, and their graceful shutdown.
type App struct {
	cfg     *config.Config
	log     *applogger.Logger
	handler xhttp.Handler
	options *usecase.OptionsUseCase
	cache   cache.BytesCache

	httpServer *xhttp.Server
	refresher  *cron.Cron
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	options *usecase.OptionsUseCase,
	c cache.BytesCache,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		handler: handler,
		options: options,
		cache:   c,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.log),
		xhttp.WithMetricsPath(metricsPath),
	)

	refresher, err := a.options.StartRefresher(a.cfg.Options.RefreshCron)
	if err != nil {
		a.log.Warn("option refresher not started", applogger.Error(err))
	} else {
		a.refresher = refresher
		a.log.Info("option refresher started", applogger.String("schedule", a.cfg.Options.RefreshCron))
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	if a.refresher != nil {
		<-a.refresher.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if closer, ok := a.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.log.Warn("cache close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
