package realtime

import "time"

// Message is the wire envelope for everything pushed to a subscriber
type Message struct {
	Event   string    `json:"event"`
	RoomID  string    `json:"room_id"`
	Payload any       `json:"payload,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// ClientCommand is the envelope for messages a subscriber sends upstream.
// The only commands are subscribe and unsubscribe; all game actions go
// through the HTTP API.
type ClientCommand struct {
	Action string `json:"action"`
	RoomID string `json:"room_id"`
}

// Client command actions
const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
)
