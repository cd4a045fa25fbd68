package domain

import "time"

type Health struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// NewHealth reports a live service at the given instant, formatted as
// ISO 8601 in UTC.
func NewHealth(service string, now time.Time) Health {
	return Health{
		OK:      true,
		Service: service,
		Time:    now.UTC().Format(time.RFC3339Nano),
	}
}
