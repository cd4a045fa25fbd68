// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (nlp.go, voice.go, health.go) hold the request and
// response payloads and the pure functions that build them. No I/O here, only
// contracts and transformations.
package domain
