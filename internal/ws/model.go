package ws

import "time"

const (
	EventConnected = "connected"
	EventPong      = "pong"
)

// OutgoingMessage is the envelope every client receives.
type OutgoingMessage struct {
	Type      string    `json:"type"`
	CompanyID string    `json:"company_id"`
	At        time.Time `json:"at"`
	Payload   any       `json:"payload,omitempty"`
}

// Message is what clients may send; only "ping" is understood.
type Message struct {
	Type string `json:"type"`
}
