package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/adapter/httpserver"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/adapter/metrics"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/adapter/stt"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/app"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/config"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/logging"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/retry"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/version"
	"github.com/jonboulle/clockwork"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(cfg *config.Config, srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", version.Get().String())

	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)
	errorMetrics := metrics.NewErrorMetrics(reg)
	serviceMetrics := metrics.NewServiceMetrics(reg)

	transcriber := stt.NewRetrying(stt.NewPlaceholder(), retry.Policy{
		MaxAttempts:    cfg.TranscribeMaxAttempts,
		InitialBackoff: cfg.TranscribeRetryBackoff,
		Clock:          clock,
	})

	appSvc := app.NewService(cfg.ServiceName, transcriber, serviceMetrics, clock)

	srv := httpserver.NewServer(cfg, appSvc,
		httpserver.WithClock(clock),
		httpserver.WithHealthChecks(httpserver.HealthCheck{Name: "transcriber", Check: appSvc.CheckTranscriber}),
		httpserver.WithMetrics(metrics.Handler(reg), httpMetrics.Middleware(), errorMetrics),
	)

	done := runGracefulShutdown(cfg, srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
