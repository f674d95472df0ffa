package chat

import "time"

// MessageResponse is one chat message
type MessageResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender" example:"assistant"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionResponse is a chat session with its full message log
type SessionResponse struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Pending   bool              `json:"pending"`
	Messages  []MessageResponse `json:"messages"`
}
