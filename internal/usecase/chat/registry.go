package chat

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
)

// Registry keeps the chat sessions opened against this process.
type Registry struct {
	analyzer repositories.AnalysisClient
	tracker  repositories.ActivityTracker
	timeout  time.Duration
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(analyzer repositories.AnalysisClient, tracker repositories.ActivityTracker, timeout time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		analyzer: analyzer,
		tracker:  tracker,
		timeout:  timeout,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Open creates and registers a new session.
func (r *Registry) Open() *Session {
	s := NewSession(r.analyzer, r.tracker, r.timeout, r.logger)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.logger.Info("💬 Chat session opened", zap.String("session_id", s.ID()))
	return s
}

// Get returns the session with id or ErrSessionNotFound.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return s, nil
}

// Close removes the session with id.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return entities.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
