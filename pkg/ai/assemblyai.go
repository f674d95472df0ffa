package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

// AssemblyAIClient transcribes audio with speaker labels through the
// official AssemblyAI SDK. Transcribe blocks until the transcript is
// completed or failed.
type AssemblyAIClient struct {
	client       *aai.Client
	audio        repositories.AudioStore
	languageCode string
	logger       *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client. audio resolves file
// handles and may be nil when only URLs are submitted.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig, audio repositories.AudioStore, logger *zap.Logger) *AssemblyAIClient {
	opts := []aai.ClientOption{aai.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AssemblyAIClient{
		client:       aai.NewClientWithOptions(opts...),
		audio:        audio,
		languageCode: cfg.LanguageCode,
		logger:       logger,
	}
}

// Transcribe implements repositories.TranscriptionClient
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio entities.AudioReference) (*entities.Transcript, error) {
	if err := audio.Validate(); err != nil {
		return nil, err
	}

	params := c.params()

	var (
		transcript aai.Transcript
		err        error
	)
	switch {
	case audio.IsURL():
		c.logger.Info("🎙️ Starting transcription", zap.String("audio_url", audio.URL))
		transcript, err = c.client.Transcripts.TranscribeFromURL(ctx, audio.URL, params)

	case audio.IsFile():
		if c.audio == nil {
			return nil, entities.NewTranscriptionError(errors.New("audio storage is not configured"))
		}
		reader, openErr := c.audio.Open(ctx, audio.FileHandle)
		if openErr != nil {
			return nil, entities.NewTranscriptionError(fmt.Errorf("open %s: %w", audio.FileHandle, openErr))
		}
		defer reader.Close()

		c.logger.Info("📤 Uploading file to AssemblyAI", zap.String("file_handle", audio.FileHandle))
		transcript, err = c.client.Transcripts.TranscribeFromReader(ctx, reader, params)
	}
	if err != nil {
		return nil, entities.NewTranscriptionError(err)
	}

	return toTranscript(transcript)
}

func (c *AssemblyAIClient) params() *aai.TranscriptOptionalParams {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if c.languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.languageCode)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}
	return params
}

// toTranscript maps a finished AssemblyAI transcript to segments, one per
// utterance. Without utterances the full text becomes a single segment.
func toTranscript(t aai.Transcript) (*entities.Transcript, error) {
	switch t.Status {
	case aai.TranscriptStatusCompleted:
	case aai.TranscriptStatusError:
		msg := deref(t.Error)
		if msg == "" {
			msg = "unknown error"
		}
		return nil, entities.NewTranscriptionError(fmt.Errorf("assemblyai: %s", msg))
	default:
		return nil, entities.NewTranscriptionError(fmt.Errorf("assemblyai: transcript not completed (status %q)", t.Status))
	}

	segments := make([]entities.Segment, 0, len(t.Utterances))
	for _, utt := range t.Utterances {
		text := strings.TrimSpace(deref(utt.Text))
		if text == "" {
			continue
		}
		seg := entities.Segment{
			Text:    text,
			Speaker: deref(utt.Speaker),
		}
		if utt.Start != nil {
			seg.Start = float64(*utt.Start) / 1000.0 // ms to seconds
		}
		if utt.End != nil {
			seg.End = float64(*utt.End) / 1000.0
		}
		if utt.Confidence != nil {
			seg.Confidence = *utt.Confidence
		}
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		if text := strings.TrimSpace(deref(t.Text)); text != "" {
			segments = append(segments, entities.Segment{Text: text, Speaker: "A"})
		}
	}
	if len(segments) == 0 {
		return nil, entities.NewTranscriptionError(entities.ErrEmptyTranscript)
	}

	return entities.NewTranscript(segments, string(t.LanguageCode)), nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
