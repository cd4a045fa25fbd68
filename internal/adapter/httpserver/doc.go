// Package httpserver implements the HTTP server using the Echo framework.
//
// Routes: health probes (handlers_health.go), text echo (handlers_nlp.go),
// transcription (handlers_voice.go), version and Prometheus metrics.
package httpserver
