package httpserver

import (
	"fmt"
	"net/http"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	apperrors "github.com/Dineshsj3002/nexus-voice-craft/internal/platform/errors"
	"github.com/labstack/echo/v4"
)

func (s *Server) registerVoiceRoutes() {
	s.echo.POST("/voice/transcribe", s.handleTranscribe, s.bodyLimit)
}

func (s *Server) handleTranscribe(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	req := domain.ParseTranscribeRequest(body)

	resp, err := s.app.Transcribe(c.Request().Context(), req)
	if err != nil {
		return apperrors.ExternalError("transcription failed", err).
			WithField("received_audio", req.HasAudio())
	}

	if err := c.JSON(http.StatusOK, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
