package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/internal/usecase/ai"
	"github.com/johnquangdev/voice-transcriber/pkg/runcontext"
)

const (
	// GreetingMessage opens every session.
	GreetingMessage = "Hello! I'm your AI assistant. I can answer questions about the transcribed content. How can I help you today?"

	// ErrorNoticeMessage is appended in place of an answer when the model call fails.
	ErrorNoticeMessage = "Sorry, I couldn't get an answer right now. Please try again."
)

// Session is a question-and-answer conversation grounded in the current
// transcript. Its message log is append-only and at most one request is
// pending at a time.
type Session struct {
	id        string
	analyzer  repositories.AnalysisClient
	tracker   repositories.ActivityTracker
	timeout   time.Duration
	logger    *zap.Logger
	createdAt time.Time

	mu       sync.Mutex
	pending  bool
	messages []entities.ChatMessage
}

// NewSession creates a session holding only the greeting. tracker may be nil.
func NewSession(analyzer repositories.AnalysisClient, tracker repositories.ActivityTracker, timeout time.Duration, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:        uuid.NewString(),
		analyzer:  analyzer,
		tracker:   tracker,
		timeout:   timeout,
		logger:    logger,
		createdAt: time.Now(),
		messages:  []entities.ChatMessage{entities.NewAssistantMessage(GreetingMessage)},
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Messages returns a copy of the message log.
func (s *Session) Messages() []entities.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Pending reports whether a question is awaiting its answer.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Ask appends question to the log and asks the model about snapshot's
// transcript. It fails with ErrNoContext when there is no transcript and
// with ErrBusy while another question is pending. When the model call fails
// an error notice is appended and returned along with an *AnalysisError.
func (s *Session) Ask(ctx context.Context, question string, snapshot entities.Snapshot) (entities.ChatMessage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return entities.ChatMessage{}, entities.InvalidInput("question is empty")
	}
	if !snapshot.HasTranscript() {
		return entities.ChatMessage{}, entities.ErrNoContext
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return entities.ChatMessage{}, entities.ErrBusy
	}
	s.pending = true
	s.messages = append(s.messages, entities.NewUserMessage(question))
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	text, err := s.complete(ctx, question, snapshot)

	var reply entities.ChatMessage
	if err != nil {
		err = entities.NewAnalysisError("chat", err)
		reply = entities.NewAssistantMessage(ErrorNoticeMessage)
		s.logger.Warn("⚠️ Chat answer failed",
			zap.String("session_id", s.id),
			zap.Int64("generation", snapshot.Generation),
			zap.Error(err),
		)
	} else {
		reply = entities.NewAssistantMessage(text)
		s.logger.Info("💬 Chat answered",
			zap.String("session_id", s.id),
			zap.Int64("generation", snapshot.Generation),
		)
	}

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.mu.Unlock()

	return reply, err
}

func (s *Session) complete(ctx context.Context, question string, snapshot entities.Snapshot) (string, error) {
	prompt, err := ai.BuildChatPrompt(snapshot.Transcript, snapshot.Keywords, question)
	if err != nil {
		return "", err
	}

	ctx, cancel := runcontext.RunBegin(ctx, snapshot.Generation, "chat", s.timeout)
	defer cancel()

	if s.tracker != nil {
		done := s.tracker.Begin()
		defer done()
	}

	var text string
	err = runcontext.RunStage(ctx, func(ctx context.Context) error {
		var err error
		text, err = s.analyzer.Complete(ctx, prompt)
		return err
	})
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", entities.ErrEmptyCompletion
	}
	return text, nil
}
