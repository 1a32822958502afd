package completion

import (
	"context"
	"fmt"
	"strings"
)

// MockClient produces deterministic local replies when no completion backend
// is configured. Useful for development and tests.
type MockClient struct{}

func NewMockClient() *MockClient { return &MockClient{} }

func (c *MockClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	msg := strings.TrimSpace(userMessage)
	if msg == "" {
		msg = "your question"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here is general guidance on %s.\n", msg)
	if strings.Contains(systemPrompt, "**RTI Act 2005 Information:**") {
		sb.WriteString("An RTI application needs a Rs. 10 fee and goes to the Public Information Officer; expect a reply within 30 days.\n")
	}
	sb.WriteString("For authoritative advice, consult the relevant government office or a legal expert.")
	return sb.String(), nil
}

func (c *MockClient) CompleteStream(ctx context.Context, systemPrompt, userMessage string, onDelta func(delta string) error) (string, error) {
	text, err := c.Complete(ctx, systemPrompt, userMessage)
	if err != nil {
		return "", err
	}
	if onDelta != nil {
		if err := onDelta(text); err != nil {
			return "", err
		}
	}
	return text, nil
}
