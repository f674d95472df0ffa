package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Assembly.Timeout)
	assert.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 256, cfg.Events.BufferSize)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("ANALYSIS_PROVIDER", " Gemini ")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("TRANSCRIPTION_TIMEOUT", "45m")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderGemini, cfg.Analysis.Provider)
	assert.Equal(t, "gem-key", cfg.Gemini.APIKey)
	assert.Equal(t, 45*time.Minute, cfg.Assembly.Timeout)
	assert.True(t, cfg.Redis.Enabled)
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ANALYSIS_TIMEOUT", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{MaxUploadMB: 10},
		Assembly: AssemblyAIConfig{APIKey: "aai-key"},
		Analysis: AnalysisConfig{Provider: ProviderGroq},
		Groq:     GroqConfig{APIKey: "groq-key"},
		Events:   EventsConfig{BufferSize: 8},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing assemblyai key", mutate: func(c *Config) { c.Assembly.APIKey = "" }, wantErr: "ASSEMBLYAI_API_KEY"},
		{name: "missing groq key", mutate: func(c *Config) { c.Groq.APIKey = "" }, wantErr: "GROQ_API_KEY"},
		{name: "gemini without key", mutate: func(c *Config) { c.Analysis.Provider = ProviderGemini }, wantErr: "GEMINI_API_KEY"},
		{name: "unknown provider", mutate: func(c *Config) { c.Analysis.Provider = "openai" }, wantErr: "unsupported ANALYSIS_PROVIDER"},
		{name: "empty event buffer", mutate: func(c *Config) { c.Events.BufferSize = 0 }, wantErr: "EVENT_BUFFER_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
