package stt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyTranscriber struct {
	errs  []error
	calls int
}

func (f *flakyTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return "", f.errs[f.calls-1]
	}
	return domain.PlaceholderTranscript, nil
}

var testPolicy = retry.Policy{MaxAttempts: 3, InitialBackoff: time.Millisecond}

func TestRetrying_RecoversFromTransientError(t *testing.T) {
	next := &flakyTranscriber{errs: []error{errors.New("timeout")}}
	r := NewRetrying(next, testPolicy)

	transcript, err := r.Transcribe(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, domain.PlaceholderTranscript, transcript)
	assert.Equal(t, 2, next.calls)
}

func TestRetrying_UnavailableIsPermanent(t *testing.T) {
	next := &flakyTranscriber{errs: []error{domain.ErrTranscriberUnavailable}}
	r := NewRetrying(next, testPolicy)

	_, err := r.Transcribe(context.Background(), "abc")

	require.ErrorIs(t, err, domain.ErrTranscriberUnavailable)
	assert.Equal(t, 1, next.calls)
}

func TestRetrying_GivesUp(t *testing.T) {
	boom := errors.New("boom")
	next := &flakyTranscriber{errs: []error{boom, boom, boom}}
	r := NewRetrying(next, testPolicy)

	_, err := r.Transcribe(context.Background(), "abc")

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, next.calls)
}

func TestRetrying_WrapsPlaceholder(t *testing.T) {
	r := NewRetrying(NewPlaceholder(), testPolicy)

	transcript, err := r.Transcribe(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.PlaceholderTranscript, transcript)
}
