// Package app provides the application service layer.
//
// Orchestrates the use cases behind the HTTP endpoints: health, text echo and
// transcription. Depends on domain interfaces, not concrete implementations.
package app
