package domain

import "context"

// PlaceholderTranscript is returned for every transcription request until a
// real speech-to-text backend is plugged in.
const PlaceholderTranscript = "This is a dummy transcript (replace with real STT)."

type TranscribeRequest struct {
	AudioBase64 string `json:"audioBase64"`

	// audioPresent is set by the parser when the field held any non-empty
	// value, including non-strings that never reach the transcriber.
	audioPresent bool
}

// HasAudio reports whether the request carried a non-empty audio field.
func (r TranscribeRequest) HasAudio() bool {
	return r.audioPresent || r.AudioBase64 != ""
}

type TranscribeResponse struct {
	Transcript    string `json:"transcript"`
	ReceivedAudio bool   `json:"receivedAudio"`
}

// ParseTranscribeRequest decodes a transcription request permissively.
// Only string audio is kept for transcription, but any non-empty value
// counts as received.
func ParseTranscribeRequest(body []byte) TranscribeRequest {
	fields := decodeObject(body)
	return TranscribeRequest{
		AudioBase64:  stringField(fields, "audioBase64"),
		audioPresent: truthyField(fields, "audioBase64"),
	}
}

// Transcriber turns base64-encoded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioBase64 string) (string, error)
}
