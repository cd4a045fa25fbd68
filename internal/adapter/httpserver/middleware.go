package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/Dineshsj3002/nexus-voice-craft/internal/platform/errors"
	"github.com/labstack/echo/v4"
)

// ErrorHandlingMiddleware turns any handler error, including Echo's own
// routing errors and recovered panics, into a structured JSON response.
func (s *Server) ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var structuredErr *apperrors.Error
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				structuredErr = WrapHTTPError(httpErr)
			} else {
				structuredErr = apperrors.AsStructuredError(err)
			}

			if s.errorMetrics != nil {
				s.errorMetrics.ObserveError(string(structuredErr.Type))
			}
			logError(c, structuredErr)

			if c.Response().Committed {
				return nil
			}
			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeValidation, apperrors.TypeNotFound, apperrors.TypeMethodNotAllowed, apperrors.TypeTooLarge:
		slog.InfoContext(ctx, "Client error", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	case apperrors.TypeExternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "External service error", attrs...)
	default:
		slog.ErrorContext(ctx, "Unknown error type", attrs...)
	}
}

// WrapHTTPError converts Echo's HTTPError to a structured error.
func WrapHTTPError(httpErr *echo.HTTPError) *apperrors.Error {
	message, ok := httpErr.Message.(string)
	if !ok || message == "" {
		message = http.StatusText(httpErr.Code)
	}
	if message == "" {
		message = "internal server error"
	}
	message = strings.ToLower(message)

	var err *apperrors.Error
	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		err = apperrors.ValidationError(message)
	case http.StatusNotFound:
		err = apperrors.NotFoundError(message)
	case http.StatusMethodNotAllowed:
		err = apperrors.MethodNotAllowedError(message)
	case http.StatusRequestEntityTooLarge:
		err = apperrors.TooLargeError(message)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		err = apperrors.ExternalError(message, httpErr.Internal)
	default:
		err = apperrors.InternalError(message, httpErr.Internal)
	}
	if err.Cause == nil && httpErr.Internal != nil {
		err.Cause = httpErr.Internal
	}

	return err
}
