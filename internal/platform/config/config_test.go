package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "ai", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "10M", cfg.BodyLimit)
	assert.Equal(t, 3, cfg.TranscribeMaxAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.TranscribeRetryBackoff)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("SERVICE_NAME", "ai-staging")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("BODY_LIMIT", "512K")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ai-staging", cfg.ServiceName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "512K", cfg.BodyLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"non-numeric port", "PORT", "http", "PORT must be a number between 1 and 65535"},
		{"port zero", "PORT", "0", "PORT must be a number between 1 and 65535"},
		{"port too large", "PORT", "70000", "PORT must be a number between 1 and 65535"},
		{"unknown log format", "LOG_FORMAT", "xml", "LOG_FORMAT must be text or json"},
		{"zero shutdown timeout", "SHUTDOWN_TIMEOUT", "0s", "SHUTDOWN_TIMEOUT must be positive"},
		{"unparseable body limit", "BODY_LIMIT", "lots", "BODY_LIMIT must be a positive size"},
		{"zero body limit", "BODY_LIMIT", "0", "BODY_LIMIT must be a positive size"},
		{"zero transcribe attempts", "TRANSCRIBE_MAX_ATTEMPTS", "0", "TRANSCRIBE_MAX_ATTEMPTS must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyServiceName(t *testing.T) {
	cfg := &Config{Port: "5001", LogFormat: "text", ShutdownTimeout: time.Second, BodyLimit: "1M", TranscribeMaxAttempts: 1}

	err := validate(cfg)
	require.Error(t, err)
	assert.Equal(t, "SERVICE_NAME must not be empty", err.Error())
}
