package repositories

import (
	"context"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// TranscriptionClient turns audio into a speaker-labelled transcript.
// Failures are reported as *entities.TranscriptionError.
type TranscriptionClient interface {
	Transcribe(ctx context.Context, audio entities.AudioReference) (*entities.Transcript, error)
}

// AnalysisClient sends one prompt to a language model and returns its text.
// Failures, including an empty completion, are reported as *entities.AnalysisError.
type AnalysisClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ActivityTracker counts external calls in flight. Begin returns the func
// that ends the call; calling it more than once is harmless.
type ActivityTracker interface {
	Begin() func()
}
