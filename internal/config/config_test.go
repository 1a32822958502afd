package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	setCoreEnvEmpty(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BindAddr != ":8080" {
		t.Fatalf("BindAddr = %q, want :8080", cfg.BindAddr)
	}
	if cfg.CompletionMode != "auto" {
		t.Fatalf("CompletionMode = %q, want auto", cfg.CompletionMode)
	}
	if cfg.CompletionModel != "llama3-8b-8192" {
		t.Fatalf("CompletionModel = %q", cfg.CompletionModel)
	}
	if cfg.CompletionTemperature != 0.7 {
		t.Fatalf("CompletionTemperature = %v, want 0.7", cfg.CompletionTemperature)
	}
	if cfg.CompletionMaxTokens != 1000 {
		t.Fatalf("CompletionMaxTokens = %d, want 1000", cfg.CompletionMaxTokens)
	}
	if cfg.SessionTTL != 0 {
		t.Fatalf("SessionTTL = %v, want 0 (sessions kept forever by default)", cfg.SessionTTL)
	}
	if !cfg.SerializeSessions {
		t.Fatal("SerializeSessions should default to true")
	}
}

func TestLoadExplicitValues(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("APP_BIND_ADDR", ":9090")
	t.Setenv("COMPLETION_TIMEOUT", "10s")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SERIALIZE_SESSIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BindAddr != ":9090" {
		t.Fatalf("BindAddr = %q, want :9090", cfg.BindAddr)
	}
	if cfg.CompletionTimeout != 10*time.Second {
		t.Fatalf("CompletionTimeout = %v, want 10s", cfg.CompletionTimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.SerializeSessions {
		t.Fatal("SerializeSessions should be off")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "COMPLETION_TIMEOUT", "soon"},
		{"bad temperature", "COMPLETION_TEMPERATURE", "3.5"},
		{"bad max tokens", "COMPLETION_MAX_TOKENS", "0"},
		{"ttl too small", "SESSION_TTL", "5s"},
		{"bad bool", "SERIALIZE_SESSIONS", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCoreEnvEmpty(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}

func setCoreEnvEmpty(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_BIND_ADDR",
		"APP_SHUTDOWN_TIMEOUT",
		"APP_METRICS_NAMESPACE",
		"APP_ALLOW_ANY_ORIGIN",
		"COMPLETION_MODE",
		"GROQ_API_KEY",
		"GROQ_BASE_URL",
		"COMPLETION_MODEL",
		"COMPLETION_TEMPERATURE",
		"COMPLETION_MAX_TOKENS",
		"COMPLETION_TIMEOUT",
		"DATABASE_URL",
		"INGEST_API_KEY",
		"SESSION_TTL",
		"SESSION_JANITOR_INTERVAL",
		"SERIALIZE_SESSIONS",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}
