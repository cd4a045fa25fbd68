package stt

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/retry"
)

var _ domain.Transcriber = (*Retrying)(nil)

// Retrying retries transient failures of the wrapped transcriber.
// domain.ErrTranscriberUnavailable and context errors are permanent.
type Retrying struct {
	next   domain.Transcriber
	policy retry.Policy
}

func NewRetrying(next domain.Transcriber, policy retry.Policy) *Retrying {
	if policy.OnRetry == nil {
		policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
			slog.Warn("Transcription failed, retrying", "attempt", attempt, "backoff", backoff, "error", err)
		}
	}
	return &Retrying{next: next, policy: policy}
}

func (r *Retrying) Transcribe(ctx context.Context, audioBase64 string) (string, error) {
	return retry.Do(ctx, r.policy, classify, func(ctx context.Context) (string, error) {
		return r.next.Transcribe(ctx, audioBase64)
	})
}

func classify(err error) retry.Action {
	switch {
	case errors.Is(err, domain.ErrTranscriberUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return retry.Stop
	default:
		return retry.Retry
	}
}
