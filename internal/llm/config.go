package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the analysis client.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. Analysis is
// enabled only when an API key is present.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4",
		TimeoutMs:  30000,
		MaxRetries: 1,
	}
}

// LoadConfig reads analysis configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("MEETCOST_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	cfg.Enabled = cfg.APIKey != ""

	if v := os.Getenv("MEETCOST_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MEETCOST_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MEETCOST_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MEETCOST_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MEETCOST_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MEETCOST_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
