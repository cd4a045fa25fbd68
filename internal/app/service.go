package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Observer receives per-use-case measurements.
type Observer interface {
	ObserveEcho(length int)
	ObserveTranscribe(receivedAudio bool)
}

type noopObserver struct{}

func (noopObserver) ObserveEcho(int) {}
func (noopObserver) ObserveTranscribe(bool) {}

// Service is the application layer behind the HTTP handlers. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	serviceName string
	transcriber domain.Transcriber
	observer    Observer
	clock       clockwork.Clock
}

// NewService creates the application layer service.
// observer may be nil.
func NewService(serviceName string, transcriber domain.Transcriber, observer Observer, clock clockwork.Clock) *Service {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Service{
		serviceName: serviceName,
		transcriber: transcriber,
		observer:    observer,
		clock:       clock,
	}
}

func (s *Service) Health() domain.Health {
	return domain.NewHealth(s.serviceName, s.clock.Now())
}

func (s *Service) Echo(ctx context.Context, req domain.EchoRequest) domain.EchoResponse {
	resp := domain.NewEchoResponse(req.Text)
	s.observer.ObserveEcho(resp.Length)
	slog.DebugContext(ctx, "Echo served", "length", resp.Length)
	return resp
}

// Transcribe returns the transcriber's text for the request. The audio flag
// reflects the request alone, never the transcriber's output.
func (s *Service) Transcribe(ctx context.Context, req domain.TranscribeRequest) (domain.TranscribeResponse, error) {
	if s.transcriber == nil {
		return domain.TranscribeResponse{}, domain.ErrTranscriberUnavailable
	}

	transcript, err := s.transcriber.Transcribe(ctx, req.AudioBase64)
	if err != nil {
		return domain.TranscribeResponse{}, fmt.Errorf("transcribe: %w", err)
	}

	s.observer.ObserveTranscribe(req.HasAudio())
	return domain.TranscribeResponse{
		Transcript:    transcript,
		ReceivedAudio: req.HasAudio(),
	}, nil
}

// CheckTranscriber is a readiness check for the configured transcriber.
func (s *Service) CheckTranscriber(_ context.Context) error {
	if s.transcriber == nil {
		return domain.ErrTranscriberUnavailable
	}
	return nil
}
