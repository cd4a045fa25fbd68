package httpserver

import (
	"fmt"
	"net/http"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	"github.com/labstack/echo/v4"
)

func (s *Server) registerNLPRoutes() {
	s.echo.POST("/nlp/echo", s.handleEcho, s.bodyLimit)
}

// handleEcho accepts any body; unparseable input echoes the empty string.
func (s *Server) handleEcho(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	req := domain.ParseEchoRequest(body)

	resp := s.app.Echo(c.Request().Context(), req)
	if err := c.JSON(http.StatusOK, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
