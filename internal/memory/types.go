package memory

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single conversational message. Immutable once recorded.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Context is the per-session user context threaded into prompts.
// DocumentContext is an opaque value the core never inspects.
type Context struct {
	City            string   `json:"city,omitempty"`
	Language        string   `json:"language,omitempty"`
	DocumentContext any      `json:"document_context,omitempty"`
	LegalTopics     []string `json:"legal_topics,omitempty"`
}

// ContextPatch carries partial context updates. Zero-valued fields are
// skipped on merge, so an empty patch never changes stored values.
type ContextPatch struct {
	City            string
	Language        string
	DocumentContext any
}

// Snapshot is a copy of one session's conversation state.
type Snapshot struct {
	SessionID string  `json:"session_id"`
	Messages  []Turn  `json:"messages"`
	Context   Context `json:"context"`
}

// Store keeps per-session conversation memory. Lookups create on miss and
// never fail.
type Store interface {
	Memory(sessionID string) Snapshot
	AddTurn(sessionID, role, content string) Turn
	MergeContext(sessionID string, patch ContextPatch)
	MergeTopics(sessionID string, topics []string)
	RecentContext(sessionID string) string
	ClearSession(sessionID string)
	Reset()
	Len(sessionID string) int
	SessionCount() int
}
