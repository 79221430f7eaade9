package gateway

import (
	"os"
	"strconv"
)

// Config holds the workflow endpoint settings.
type Config struct {
	Endpoint  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns gateway defaults. The endpoint URL is opaque
// deployment configuration and has no useful default beyond a placeholder.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:8085/workflow/intake",
		TimeoutMs: 30000,
		LogCalls:  false,
	}
}

// LoadConfig reads gateway configuration from TRIAGE_* environment
// variables, falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TRIAGE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TRIAGE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRIAGE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
