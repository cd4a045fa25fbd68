// Package stt holds speech-to-text adapters behind domain.Transcriber.
package stt

import (
	"context"
	"log/slog"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
)

var _ domain.Transcriber = (*Placeholder)(nil)

// Placeholder answers every request with domain.PlaceholderTranscript.
// The audio is never decoded.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Transcribe(ctx context.Context, audioBase64 string) (string, error) {
	slog.DebugContext(ctx, "Placeholder transcription", "audio_chars", len(audioBase64))
	return domain.PlaceholderTranscript, nil
}
