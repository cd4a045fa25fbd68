package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// ServiceMetrics holds Prometheus metrics for the echo and transcribe endpoints.
type ServiceMetrics struct {
	EchoRequests       prometheus.Counter
	EchoInputLength    prometheus.Histogram
	TranscribeRequests *prometheus.CounterVec
}

// NewServiceMetrics creates and registers endpoint metrics on the given registry.
func NewServiceMetrics(reg prometheus.Registerer) *ServiceMetrics {
	m := &ServiceMetrics{
		EchoRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "echo_requests_total",
			Help:      "Total number of echo requests served.",
		}),
		EchoInputLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "echo_input_length",
			Help:      "Length of echoed input text in characters.",
			Buckets:   []float64{0, 1, 10, 50, 100, 500, 1000, 5000},
		}),
		TranscribeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcribe_requests_total",
			Help:      "Total number of transcription requests, by whether audio was supplied.",
		}, []string{"received_audio"}),
	}

	reg.MustRegister(m.EchoRequests, m.EchoInputLength, m.TranscribeRequests)
	return m
}

func (m *ServiceMetrics) ObserveEcho(length int) {
	m.EchoRequests.Inc()
	m.EchoInputLength.Observe(float64(length))
}

func (m *ServiceMetrics) ObserveTranscribe(receivedAudio bool) {
	m.TranscribeRequests.WithLabelValues(strconv.FormatBool(receivedAudio)).Inc()
}
