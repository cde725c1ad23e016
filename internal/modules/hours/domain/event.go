package domain

import "time"

// Event is the message shape shared by the kafka consumer and the websocket
// stream: a dot-separated topic plus an arbitrary JSON payload.
type Event struct {
	Topic     string    `json:"topic"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
