package entities

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is one entry of a chat session's append-only log.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

func newChatMessage(sender Sender, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

func NewUserMessage(content string) ChatMessage {
	return newChatMessage(SenderUser, content)
}

func NewAssistantMessage(content string) ChatMessage {
	return newChatMessage(SenderAssistant, content)
}
