package presenter

import (
	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/chat"
	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	chatUsecase "github.com/johnquangdev/voice-transcriber/internal/usecase/chat"
)

// ToMessageResponse converts a ChatMessage
func ToMessageResponse(m entities.ChatMessage) chat.MessageResponse {
	return chat.MessageResponse{
		ID:        m.ID,
		Content:   m.Content,
		Sender:    string(m.Sender),
		Timestamp: m.Timestamp,
	}
}

// ToSessionResponse converts a chat Session and its message log
func ToSessionResponse(s *chatUsecase.Session) *chat.SessionResponse {
	if s == nil {
		return nil
	}

	messages := s.Messages()
	out := make([]chat.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageResponse(m))
	}

	return &chat.SessionResponse{
		ID:        s.ID(),
		CreatedAt: s.CreatedAt(),
		Pending:   s.Pending(),
		Messages:  out,
	}
}
