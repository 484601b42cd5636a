// Package server wires the HeartTrack components together and runs the
// HTTP server until the process is asked to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hearttrack/internal/logging"
	"github.com/dmitrijs2005/hearttrack/internal/server/auth"
	"github.com/dmitrijs2005/hearttrack/internal/server/config"
	"github.com/dmitrijs2005/hearttrack/internal/server/httpserver"
	"github.com/dmitrijs2005/hearttrack/internal/server/metrics"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/services"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpserver.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel)

	if logging.ParseLevel(c.LogLevel) > logging.ParseLevel("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	defaults := models.Thresholds{High: c.DefaultHighThreshold, Low: c.DefaultLowThreshold}
	if err := services.ValidateThresholds(defaults); err != nil {
		return nil, fmt.Errorf("default thresholds high=%d low=%d: %w", defaults.High, defaults.Low, err)
	}

	hasher, err := auth.NewPasswordHasher(c.PasswordMode)
	if err != nil {
		return nil, fmt.Errorf("password mode: %w", err)
	}

	us := services.NewUserService(hasher, c, m)
	vs := services.NewVitalsService(clock.WallClock, m)
	as := services.NewArchiveService(c, vs, clock.WallClock)

	sessions := session.NewRegistry(c.SessionTTL, us, defaults, session.WithMetrics(m))

	srv, err := httpserver.NewHTTPServer(c.ListenAddr, logger, httpserver.Deps{
		Users:    us,
		Vitals:   vs,
		Archive:  as,
		Sessions: sessions,
		Gatherer: reg,
	}, c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"password_mode", app.config.PasswordMode,
		"session_ttl", app.config.SessionTTL.String(),
		"archive", app.config.S3Enabled)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
