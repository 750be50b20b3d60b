package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alimentos/backend/config"
	"github.com/pageza/alimentos/backend/internal/logging"
	"github.com/pageza/alimentos/backend/internal/metrics"
	"github.com/pageza/alimentos/backend/internal/router"
	"github.com/pageza/alimentos/backend/internal/service"
)

// App is the application context: built once at startup, it owns every
// long-lived collaborator and hands them to the router explicitly.
type App struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Metrics   *metrics.Metrics
	Alimentos *service.AlimentoService
	Router    *gin.Engine
	Server    *Server

	logFile io.Closer
}

// NewApp validates cfg and wires the logger, metrics, storage and router
func NewApp(cfg *config.Config) (*App, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// before any engine is built, so debug route dumps stay off in release
	gin.SetMode(cfg.ServerMode)

	log, logFile, err := logging.New(cfg.LogDir, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		Logger:    log,
		Metrics:   metrics.New(),
		Alimentos: service.NewAlimentoService(cfg.DBPath),
		logFile:   logFile,
	}
	app.Router = router.SetupRouter(router.Dependencies{
		Alimentos: app.Alimentos,
		Logger:    app.Logger,
		Metrics:   app.Metrics,
	})
	app.Server = New(cfg, app.Router, app.Logger)

	return app, nil
}

// Close releases the log file
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// Server represents the HTTP server
type Server struct {
	http   *http.Server
	logger logrus.FieldLogger
}

// New creates a server for handler bound to cfg.Addr()
func New(cfg *config.Config, handler http.Handler, logger logrus.FieldLogger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Start listens on the configured address and blocks until Shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
// A clean shutdown returns nil.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Infof("Listening on %s", ln.Addr())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
