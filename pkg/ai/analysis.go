package ai

import (
	"context"
	"fmt"
	"io"

	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewAnalysisClient builds the language model client selected by
// ANALYSIS_PROVIDER. The returned closer releases provider resources.
func NewAnalysisClient(ctx context.Context, cfg *config.Config) (repositories.AnalysisClient, io.Closer, error) {
	switch cfg.Analysis.Provider {
	case config.ProviderGroq:
		return NewGroqClient(&cfg.Groq), nopCloser{}, nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, &cfg.Gemini)
		if err != nil {
			return nil, nil, err
		}
		return client, client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported analysis provider %q", cfg.Analysis.Provider)
	}
}
