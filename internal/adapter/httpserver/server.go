package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/config"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
)

type appService interface {
	Health() domain.Health
	Echo(ctx context.Context, req domain.EchoRequest) domain.EchoResponse
	Transcribe(ctx context.Context, req domain.TranscribeRequest) (domain.TranscribeResponse, error)
}

type errorObserver interface {
	ObserveError(errType string)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app          appService
	healthChecks []HealthCheck

	requestMetrics echo.MiddlewareFunc
	errorMetrics   errorObserver
	metricsHandler http.Handler

	bodyLimit echo.MiddlewareFunc

	clock     clockwork.Clock
	startTime time.Time
}

// Option customises optional server dependencies.
type Option func(*Server)

func WithHealthChecks(checks ...HealthCheck) Option {
	return func(s *Server) { s.healthChecks = checks }
}

// WithMetrics exposes handler on /metrics, records requests through
// requestMetrics and counts error responses on errs.
func WithMetrics(handler http.Handler, requestMetrics echo.MiddlewareFunc, errs errorObserver) Option {
	return func(s *Server) {
		s.metricsHandler = handler
		s.requestMetrics = requestMetrics
		s.errorMetrics = errs
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

func NewServer(cfg *config.Config, app appService, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:   e,
		config: cfg,
		app:    app,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(srv)
	}
	srv.startTime = srv.clock.Now()

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// ServeHTTP lets the server be driven directly, e.g. by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
