package metrics

import "github.com/prometheus/client_golang/prometheus"

// ErrorMetrics counts error responses written by the HTTP layer.
type ErrorMetrics struct {
	HTTPErrors *prometheus.CounterVec
}

// NewErrorMetrics creates and registers error metrics on the given registry.
func NewErrorMetrics(reg prometheus.Registerer) *ErrorMetrics {
	m := &ErrorMetrics{
		HTTPErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total HTTP errors by error type.",
		}, []string{"type"}),
	}

	reg.MustRegister(m.HTTPErrors)
	return m
}

func (m *ErrorMetrics) ObserveError(errType string) {
	m.HTTPErrors.WithLabelValues(errType).Inc()
}
