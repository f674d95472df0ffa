package entities

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")

	// Context errors
	ErrNoContext = errors.New("no transcript available")

	// Chat errors
	ErrBusy            = errors.New("a request is already pending")
	ErrSessionNotFound = errors.New("chat session not found")

	// Provider errors
	ErrEmptyCompletion = errors.New("empty completion")
	ErrEmptyTranscript = errors.New("transcript has no segments")
)

// TranscriptionError wraps any failure reported by the speech-to-text service.
type TranscriptionError struct {
	Cause error
}

func (e *TranscriptionError) Error() string {
	if e.Cause == nil {
		return "transcription failed"
	}
	return fmt.Sprintf("transcription failed: %v", e.Cause)
}

func (e *TranscriptionError) Unwrap() error { return e.Cause }

// NewTranscriptionError wraps err unless it already is a TranscriptionError.
func NewTranscriptionError(err error) *TranscriptionError {
	var te *TranscriptionError
	if errors.As(err, &te) {
		return te
	}
	return &TranscriptionError{Cause: err}
}

// AnalysisError wraps a failed language model call. Kind names the request
// that failed (summary, action_items, chat, template).
type AnalysisError struct {
	Kind  string
	Cause error
}

func (e *AnalysisError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("analysis failed: %v", e.Cause)
	}
	return fmt.Sprintf("%s analysis failed: %v", e.Kind, e.Cause)
}

func (e *AnalysisError) Unwrap() error { return e.Cause }

// NewAnalysisError wraps err for kind. An existing AnalysisError keeps its
// cause but takes the new kind.
func NewAnalysisError(kind string, err error) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return &AnalysisError{Kind: kind, Cause: ae.Cause}
	}
	return &AnalysisError{Kind: kind, Cause: err}
}

// UnknownTemplateError is returned when a template id is not in the catalog.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.ID)
}

// InvalidInput annotates ErrInvalidInput with a reason.
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
