package models

import "time"

// Message is a directional direct message. The conversation between two users
// is the union of messages where {From,To} equals that pair.
type Message struct {
	ID        int64     `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
