package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
)

// Bus stores recent pipeline events and provides incremental reads. Every
// published event is also forwarded to the mirrors, in order.
type Bus struct {
	mu        sync.RWMutex
	nextSeq   int64
	maxEvents int
	events    []entities.PipelineEvent
	mirrors   []repositories.EventPublisher
}

// NewBus creates a bounded in-memory event buffer.
func NewBus(maxEvents int, mirrors ...repositories.EventPublisher) *Bus {
	if maxEvents <= 0 {
		maxEvents = 256
	}

	return &Bus{
		maxEvents: maxEvents,
		events:    make([]entities.PipelineEvent, 0, maxEvents),
		mirrors:   mirrors,
	}
}

// Publish implements repositories.EventPublisher. The event is buffered even
// when a mirror fails; mirror errors are joined and returned.
func (b *Bus) Publish(ctx context.Context, event entities.PipelineEvent) error {
	event = b.append(event)

	var errs []error
	for _, m := range b.mirrors {
		if err := m.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) append(event entities.PipelineEvent) entities.PipelineEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	event.Seq = b.nextSeq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	b.events = append(b.events, event)
	if len(b.events) > b.maxEvents {
		trim := len(b.events) - b.maxEvents
		b.events = append([]entities.PipelineEvent(nil), b.events[trim:]...)
	}

	return event
}

// Since returns events with sequence strictly greater than seq.
func (b *Bus) Since(seq int64) []entities.PipelineEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entities.PipelineEvent, 0, len(b.events))
	for _, event := range b.events {
		if event.Seq > seq {
			out = append(out, event)
		}
	}
	return out
}

// LastSeq returns the sequence of the latest event, or 0.
func (b *Bus) LastSeq() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.nextSeq
}
