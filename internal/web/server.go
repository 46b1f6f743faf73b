package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Server is the browser surface.
type Server struct {
	echo    *echo.Echo
	store   *Store
	metrics *Metrics
	logger  zerolog.Logger
}

// NewServer wires the routes and middleware around store.
func NewServer(store *Store, metrics *Metrics, logger zerolog.Logger) *Server {
	logger = logger.With().Str("component", "web").Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, store: store, metrics: metrics, logger: logger}

	e.Use(echomiddleware.Recover())
	e.Use(RequestID())
	e.Use(ContextLogger(logger))
	e.Use(RequestLogger(logger))

	e.GET("/", s.IndexHandler)
	e.GET("/api/countries", s.CountriesHandler)
	e.GET("/healthz", s.HealthHandler)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run starts the load and serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.store.Start(ctx)
	defer s.store.Close()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("server starting")
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
