package httpserver

import (
	"log/slog"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/correlation"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) registerRoutes() {
	s.echo.Use(correlationMiddleware)
	s.echo.Use(s.setupRequestLoggerMiddleware())
	if s.requestMetrics != nil {
		s.echo.Use(s.requestMetrics)
	}
	s.echo.Use(s.ErrorHandlingMiddleware())
	s.echo.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		// hand the panic to ErrorHandlingMiddleware as a plain error
		DisableErrorHandler: true,
	}))

	s.bodyLimit = middleware.BodyLimit(s.bodyLimitSize())

	s.registerHealthRoutes()
	s.registerNLPRoutes()
	s.registerVoiceRoutes()

	if s.metricsHandler != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metricsHandler))
	}
}

const defaultBodyLimit = "10M"

func (s *Server) bodyLimitSize() string {
	if s.config == nil || s.config.BodyLimit == "" {
		return defaultBodyLimit
	}
	return s.config.BodyLimit
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.FromInbound(c.Request().Header.Get(correlation.Header))
		c.Response().Header().Set(correlation.Header, id)
		c.SetRequest(c.Request().WithContext(correlation.WithID(c.Request().Context(), id)))
		return next(c)
	}
}
