package memory

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

const (
	// maxTurns is a hard bound on stored turns per session; it caps prompt
	// size, it is not a caching policy.
	maxTurns = 10
	// recentWindow is how many turns RecentContext renders.
	recentWindow = 5

	recentHeader = "Recent conversation:"

	archiveTimeout = 2 * time.Second
)

type record struct {
	messages     []Turn
	context      Context
	lastActivity time.Time
}

// InMemoryStore is the process-wide conversation memory. Sessions live until
// ClearSession, Reset, or (when a TTL is configured) janitor eviction.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*record
	ttl      time.Duration
	archiver Archiver
}

// Option configures an InMemoryStore.
type Option func(*InMemoryStore)

// WithTTL enables janitor eviction of sessions idle longer than ttl.
// Zero keeps sessions forever, matching the original behavior.
func WithTTL(ttl time.Duration) Option {
	return func(s *InMemoryStore) { s.ttl = ttl }
}

// WithArchiver copies every recorded turn to a durable archive, best effort.
func WithArchiver(a Archiver) Option {
	return func(s *InMemoryStore) { s.archiver = a }
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{sessions: make(map[string]*record)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// get returns the session record, creating it on miss. Callers hold mu.
func (s *InMemoryStore) get(sessionID string) *record {
	r, ok := s.sessions[sessionID]
	if !ok {
		r = &record{}
		s.sessions[sessionID] = r
	}
	r.lastActivity = time.Now().UTC()
	return r
}

func (s *InMemoryStore) Memory(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(sessionID)
	return snapshotOf(sessionID, r)
}

func (s *InMemoryStore) AddTurn(sessionID, role, content string) Turn {
	turn := Turn{Role: role, Content: content, Timestamp: time.Now().UTC()}

	s.mu.Lock()
	r := s.get(sessionID)
	r.messages = append(r.messages, turn)
	if n := len(r.messages); n > maxTurns {
		r.messages = r.messages[n-maxTurns:]
	}
	s.mu.Unlock()

	if s.archiver != nil {
		go s.archiveBestEffort(sessionID, turn)
	}
	return turn
}

func (s *InMemoryStore) MergeContext(sessionID string, patch ContextPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(sessionID)
	if patch.City != "" {
		r.context.City = patch.City
	}
	if patch.Language != "" {
		r.context.Language = patch.Language
	}
	if patch.DocumentContext != nil {
		r.context.DocumentContext = patch.DocumentContext
	}
}

func (s *InMemoryStore) MergeTopics(sessionID string, topics []string) {
	if len(topics) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(sessionID)
	seen := make(map[string]struct{}, len(r.context.LegalTopics))
	for _, t := range r.context.LegalTopics {
		seen[t] = struct{}{}
	}
	for _, t := range topics {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		r.context.LegalTopics = append(r.context.LegalTopics, t)
	}
}

func (s *InMemoryStore) RecentContext(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.get(sessionID)
	if len(r.messages) == 0 {
		return ""
	}

	start := 0
	if len(r.messages) > recentWindow {
		start = len(r.messages) - recentWindow
	}
	lines := make([]string, 0, recentWindow)
	for _, t := range r.messages[start:] {
		lines = append(lines, t.Role+": "+t.Content)
	}
	return recentHeader + "\n" + strings.Join(lines, "\n")
}

func (s *InMemoryStore) ClearSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Reset wipes every session. The original application's clearMemory did this
// even when asked to clear a single session; ClearSession is the corrected
// per-session operation.
func (s *InMemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*record)
}

// Len reports the number of stored turns without creating the session.
func (s *InMemoryStore) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.sessions[sessionID]; ok {
		return len(rec.messages)
	}
	return 0
}

func (s *InMemoryStore) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor evicts idle sessions on a ticker until ctx is done.
// No-op unless a TTL was configured.
func (s *InMemoryStore) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evictIdle()
			}
		}
	}()
}

func (s *InMemoryStore) evictIdle() {
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.sessions {
		if now.Sub(r.lastActivity) >= s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *InMemoryStore) archiveBestEffort(sessionID string, turn Turn) {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()
	if err := s.archiver.SaveTurn(ctx, sessionID, turn); err != nil {
		log.Printf("memory archive failed for session %s: %v", sessionID, err)
	}
}

func snapshotOf(sessionID string, r *record) Snapshot {
	snap := Snapshot{
		SessionID: sessionID,
		Messages:  make([]Turn, len(r.messages)),
		Context:   r.context,
	}
	copy(snap.Messages, r.messages)
	if r.context.LegalTopics != nil {
		snap.Context.LegalTopics = append([]string(nil), r.context.LegalTopics...)
	}
	return snap
}
