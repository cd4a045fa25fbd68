package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dineshsj3002/nexus-voice-craft/internal/platform/correlation"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationHeader_Generated(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodGet, "/health", "")

	assert.Len(t, rec.Header().Get(correlation.Header), 8)
}

func TestCorrelationHeader_Propagated(t *testing.T) {
	var seen string
	app := &mockAppService{}
	srv := newTestServer(t, app)
	srv.echo.GET("/whoami", func(c echo.Context) error {
		seen, _ = correlation.ID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(correlation.Header, "gateway-req-7")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "gateway-req-7", rec.Header().Get(correlation.Header))
	assert.Equal(t, "gateway-req-7", seen)
}

func TestPanicIsRecovered(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	srv.echo.GET("/boom", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := doRequest(srv, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"internal"`)
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "sample_total", Help: "sample"})
	reg.MustRegister(counter)
	counter.Inc()

	srv := newTestServer(t, &mockAppService{},
		WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil, nil))

	rec := doRequest(srv, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sample_total 1")
}

func TestMetricsRoute_AbsentWithoutRegistry(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
