package ai

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("# Minutes\n"), genai.Text("- Book room")}}},
		},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "# Minutes\n- Book room", text)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{name: "nil response", resp: nil},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}},
		{name: "no content", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{name: "blank text", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractTextFromResponse(tt.resp)
			assert.ErrorIs(t, err, entities.ErrEmptyCompletion)
		})
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), &config.GeminiConfig{Model: "gemini-2.0-flash"})
	assert.Error(t, err)
}

func TestNewAnalysisClient_Provider(t *testing.T) {
	cfg := &config.Config{
		Analysis: config.AnalysisConfig{Provider: config.ProviderGroq},
		Groq:     config.GroqConfig{APIKey: "k", BaseURL: "http://localhost"},
	}

	client, closer, err := NewAnalysisClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &GroqClient{}, client)
	assert.NoError(t, closer.Close())

	cfg.Analysis.Provider = "unknown"
	_, _, err = NewAnalysisClient(context.Background(), cfg)
	assert.Error(t, err)
}
