package domain

import "time"

// Message is one turn of a session's chat thread. Messages are immutable
// once created; insertion order is the conversation order.
type Message struct {
	ID        int64
	SessionID int64
	Sender    Sender
	Content   string
	CreatedAt time.Time
}
