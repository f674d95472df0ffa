package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Assembly  AssemblyAIConfig
	Analysis  AnalysisConfig
	Groq      GroqConfig
	Gemini    GeminiConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Templates TemplatesConfig
	Events    EventsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	MaxUploadMB     int64    `envconfig:"MAX_UPLOAD_MB" default:"500"`
}

// AssemblyAIConfig holds speech-to-text configuration
type AssemblyAIConfig struct {
	APIKey       string        `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL      string        `envconfig:"ASSEMBLYAI_BASE_URL"`
	LanguageCode string        `envconfig:"ASSEMBLYAI_LANGUAGE_CODE"`
	Timeout      time.Duration `envconfig:"TRANSCRIPTION_TIMEOUT" default:"2h"`
}

// AnalysisConfig selects the language model provider
type AnalysisConfig struct {
	Provider string        `envconfig:"ANALYSIS_PROVIDER" default:"groq"`
	Timeout  time.Duration `envconfig:"ANALYSIS_TIMEOUT" default:"2m"`
}

// GroqConfig holds Groq (OpenAI-compatible) configuration
type GroqConfig struct {
	APIKey      string  `envconfig:"GROQ_API_KEY"`
	BaseURL     string  `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model       string  `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	Temperature float64 `envconfig:"GROQ_TEMPERATURE" default:"0.3"`
	MaxTokens   int     `envconfig:"GROQ_MAX_TOKENS" default:"4096"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `envconfig:"GEMINI_API_KEY"`
	Model       string  `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	Temperature float32 `envconfig:"GEMINI_TEMPERATURE" default:"0.3"`
	MaxTokens   int32   `envconfig:"GEMINI_MAX_TOKENS" default:"0"`
}

// RedisConfig holds Redis configuration. Redis only mirrors pipeline events.
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Channel  string `envconfig:"REDIS_CHANNEL" default:"voice-transcriber:events"`
}

// StorageConfig holds storage configuration for uploaded audio
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"voice-transcriber"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// TemplatesConfig points at an optional catalog file overriding the built-in one
type TemplatesConfig struct {
	CatalogPath string `envconfig:"TEMPLATE_CATALOG_PATH"`
}

// EventsConfig sizes the in-memory event buffer
type EventsConfig struct {
	BufferSize int `envconfig:"EVENT_BUFFER_SIZE" default:"256"`
}

// Load loads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv reads every section from the environment without validating.
func FromEnv() (*Config, error) {
	config := &Config{}

	sections := []struct {
		name   string
		target interface{}
	}{
		{"server", &config.Server},
		{"assemblyai", &config.Assembly},
		{"analysis", &config.Analysis},
		{"groq", &config.Groq},
		{"gemini", &config.Gemini},
		{"redis", &config.Redis},
		{"storage", &config.Storage},
		{"templates", &config.Templates},
		{"events", &config.Events},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	config.Analysis.Provider = strings.ToLower(strings.TrimSpace(config.Analysis.Provider))
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}

	switch c.Analysis.Provider {
	case ProviderGroq:
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when ANALYSIS_PROVIDER=%s", ProviderGroq)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when ANALYSIS_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("unsupported ANALYSIS_PROVIDER %q (want %s or %s)", c.Analysis.Provider, ProviderGroq, ProviderGemini)
	}

	if c.Events.BufferSize <= 0 {
		return fmt.Errorf("EVENT_BUFFER_SIZE must be positive")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
