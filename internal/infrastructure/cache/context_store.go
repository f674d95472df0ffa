package cache

import (
	"sync"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// ContextStore is the single in-memory slot holding the current run's
// transcript and artifacts. It is safe for concurrent use.
type ContextStore struct {
	mu   sync.RWMutex
	slot entities.Snapshot
}

// NewContextStore creates an empty store at generation 0
func NewContextStore() *ContextStore {
	return &ContextStore{
		slot: entities.Snapshot{Status: entities.RunStatusIdle},
	}
}

// Begin resets the slot for a newly submitted run. Everything produced for
// earlier generations is dropped.
func (s *ContextStore) Begin(run entities.PipelineRun) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slot = entities.Snapshot{
		Generation: run.Generation,
		Status:     run.Status,
		Audio:      run.Audio,
		Keywords:   run.Keywords,
	}
}

// Replace stores transcript for generation, discards any artifacts and moves
// the slot to Analyzing. It does not check the generation; callers fence it.
func (s *ContextStore) Replace(generation int64, transcript *entities.Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slot.Generation != generation {
		s.slot = entities.Snapshot{Generation: generation}
	}
	s.slot.Transcript = transcript
	s.slot.Summary = nil
	s.slot.ActionItems = nil
	s.slot.Error = ""
	s.slot.Status = entities.RunStatusAnalyzing
}

// Attach stores artifact if generation is still current and reports whether
// it did. Attaching the same kind twice keeps the last value. Once both
// artifacts have settled the slot moves to Ready.
func (s *ContextStore) Attach(generation int64, artifact entities.Artifact) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slot.Generation != generation || !artifact.Kind.IsValid() {
		return false
	}

	a := artifact
	switch artifact.Kind {
	case entities.ArtifactSummary:
		s.slot.Summary = &a
	case entities.ArtifactActionItems:
		s.slot.ActionItems = &a
	}

	if s.slot.Status == entities.RunStatusAnalyzing && s.slot.Settled() {
		s.slot.Status = entities.RunStatusReady
	}
	return true
}

// Fail marks generation as failed and clears its transcript, if generation
// is still current.
func (s *ContextStore) Fail(generation int64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slot.Generation != generation {
		return false
	}
	s.slot.Transcript = nil
	s.slot.Summary = nil
	s.slot.ActionItems = nil
	s.slot.Status = entities.RunStatusFailed
	s.slot.Error = reason
	return true
}

// Snapshot returns a copy of the slot. Artifact pointers are fresh copies.
func (s *ContextStore) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.slot
	if s.slot.Summary != nil {
		summary := *s.slot.Summary
		out.Summary = &summary
	}
	if s.slot.ActionItems != nil {
		items := *s.slot.ActionItems
		out.ActionItems = &items
	}
	return out
}
