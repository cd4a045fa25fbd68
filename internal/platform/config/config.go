package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"5001"`
	ServiceName string `env:"SERVICE_NAME" default:"ai"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
	BodyLimit       string        `env:"BODY_LIMIT" default:"10M"`

	TranscribeMaxAttempts  int           `env:"TRANSCRIBE_MAX_ATTEMPTS" default:"3"`
	TranscribeRetryBackoff time.Duration `env:"TRANSCRIBE_RETRY_BACKOFF" default:"200ms"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}

	if cfg.ServiceName == "" {
		return errors.New("SERVICE_NAME must not be empty")
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	if n, err := bytes.Parse(cfg.BodyLimit); err != nil || n <= 0 {
		return fmt.Errorf("BODY_LIMIT must be a positive size such as 512K or 10M, got %q", cfg.BodyLimit)
	}

	if cfg.TranscribeMaxAttempts < 1 {
		return errors.New("TRANSCRIBE_MAX_ATTEMPTS must be at least 1")
	}

	return nil
}
