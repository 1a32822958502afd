// Package completion wraps the external text-completion capability behind a
// small interface: system prompt and user message in, completion text out.
// Provider errors surface to callers as-is; there is no retry or backoff at
// this layer.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyCompletion = errors.New("completion returned empty text")

// Client is the synchronous completion boundary consumed by the chat
// orchestrator.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// JSONCompleter produces a completion constrained to a single JSON object.
// Used by the document analyzer; backends that cannot guarantee JSON output
// simply do not implement it.
type JSONCompleter interface {
	CompleteJSON(ctx context.Context, systemPrompt string) (string, error)
}

// Streamer is an optional capability: backends that can stream deliver text
// fragments through onDelta before returning the full text.
type Streamer interface {
	CompleteStream(ctx context.Context, systemPrompt, userMessage string, onDelta func(delta string) error) (string, error)
}

// Config controls client construction.
type Config struct {
	Mode        string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// New builds a completion client. Mode "auto" prefers the Groq backend when
// an API key is configured and otherwise falls back to the deterministic
// mock.
func New(cfg Config) (Client, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "auto":
		if strings.TrimSpace(cfg.APIKey) != "" {
			return NewGroqClient(cfg), nil
		}
		return NewMockClient(), nil
	case "groq":
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, errors.New("completion API key is required for groq mode")
		}
		return NewGroqClient(cfg), nil
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unsupported completion mode %q", cfg.Mode)
	}
}
