package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

func newTestGroq(url string) *GroqClient {
	return NewGroqClient(&config.GroqConfig{
		APIKey:      "test-key",
		BaseURL:     url,
		Model:       "llama-test",
		Temperature: 0.3,
		MaxTokens:   512,
	})
}

func TestGroqComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, groqCompletionsPath, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-test", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "summarize this", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"- Book room"}}]}`))
	}))
	defer ts.Close()

	text, err := newTestGroq(ts.URL).Complete(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "- Book room", text)
}

func TestGroqComplete_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantEmpty bool
		contains  string
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: `{"error":"overloaded"}`, contains: "status 503"},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, contains: "status 429"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantEmpty: true},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"  "}}]}`, wantEmpty: true},
		{name: "malformed body", status: http.StatusOK, body: `not json`, contains: "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := newTestGroq(ts.URL).Complete(context.Background(), "prompt")
			require.Error(t, err)

			var ae *entities.AnalysisError
			assert.True(t, errors.As(err, &ae))
			if tt.wantEmpty {
				assert.ErrorIs(t, err, entities.ErrEmptyCompletion)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestGroqComplete_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGroq(ts.URL).Complete(ctx, "prompt")
	assert.ErrorIs(t, err, context.Canceled)
}
