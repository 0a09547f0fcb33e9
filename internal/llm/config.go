package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the LLM subsystem.
type Config struct {
	APIKey             string
	BaseURL            string // empty uses the provider default
	Model              string
	TranscriptionModel string
	MaxTokens          int
	Temperature        float64
	TimeoutMs          int
	LogCalls           bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:              "gpt-4o-mini",
		TranscriptionModel: "whisper-1",
		MaxTokens:          1500,
		Temperature:        0.7,
		TimeoutMs:          60000,
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("COACHFLOW_OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("COACHFLOW_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COACHFLOW_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("COACHFLOW_LLM_TRANSCRIPTION_MODEL"); v != "" {
		cfg.TranscriptionModel = v
	}
	if v := os.Getenv("COACHFLOW_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("COACHFLOW_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("COACHFLOW_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("COACHFLOW_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
