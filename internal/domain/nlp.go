package domain

import "unicode/utf8"

// EchoPrefix is prepended to the input text in every echo response.
const EchoPrefix = "Echo from AI microservice: "

type EchoRequest struct {
	Text string `json:"text"`
}

type EchoResponse struct {
	Input  string `json:"input"`
	Echo   string `json:"echo"`
	Length int    `json:"length"`
}

// ParseEchoRequest decodes an echo request permissively. It never fails:
// unreadable bodies are treated as an empty object.
func ParseEchoRequest(body []byte) EchoRequest {
	return EchoRequest{Text: stringField(decodeObject(body), "text")}
}

// NewEchoResponse builds the echo payload for text. Length counts code
// points, not bytes.
func NewEchoResponse(text string) EchoResponse {
	return EchoResponse{
		Input:  text,
		Echo:   EchoPrefix + text,
		Length: utf8.RuneCountInString(text),
	}
}
