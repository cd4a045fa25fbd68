package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/domain"
	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/config"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
)

// --- Mock implementations ---

type mockAppService struct {
	healthFn     func() domain.Health
	echoFn       func(ctx context.Context, req domain.EchoRequest) domain.EchoResponse
	transcribeFn func(ctx context.Context, req domain.TranscribeRequest) (domain.TranscribeResponse, error)
}

func (m *mockAppService) Health() domain.Health {
	if m.healthFn != nil {
		return m.healthFn()
	}
	return domain.NewHealth("ai", testNow)
}

func (m *mockAppService) Echo(ctx context.Context, req domain.EchoRequest) domain.EchoResponse {
	if m.echoFn != nil {
		return m.echoFn(ctx, req)
	}
	return domain.NewEchoResponse(req.Text)
}

func (m *mockAppService) Transcribe(ctx context.Context, req domain.TranscribeRequest) (domain.TranscribeResponse, error) {
	if m.transcribeFn != nil {
		return m.transcribeFn(ctx, req)
	}
	return domain.TranscribeResponse{Transcript: domain.PlaceholderTranscript, ReceivedAudio: req.HasAudio()}, nil
}

type countingErrorObserver struct {
	types []string
}

func (o *countingErrorObserver) ObserveError(errType string) {
	o.types = append(o.types, errType)
}

// --- Test helpers ---

var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, app appService, opts ...Option) *Server {
	t.Helper()

	opts = append([]Option{WithClock(clockwork.NewFakeClockAt(testNow))}, opts...)
	return NewServer(&config.Config{Port: "5001", ServiceName: "ai"}, app, opts...)
}

// doRequest sends a request through the full middleware and routing stack.
func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(srv *Server, handler echo.HandlerFunc, c echo.Context) error {
	return srv.ErrorHandlingMiddleware()(handler)(c)
}
