package repositories

import (
	"context"
	"io"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// AudioStore keeps uploaded audio and hands back opaque file handles.
type AudioStore interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
	Open(ctx context.Context, handle string) (io.ReadCloser, error)
}

// EventPublisher receives pipeline events. Publishing never blocks the pipeline
// on delivery; implementations report failures through the returned error.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.PipelineEvent) error
}
