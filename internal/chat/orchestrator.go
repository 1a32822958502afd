// Package chat coordinates the query-processing pipeline: topic extraction,
// knowledge matching, conversation memory, prompt composition and the
// completion round trip.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lokai-in/lokai/internal/completion"
	"github.com/lokai-in/lokai/internal/knowledge"
	"github.com/lokai-in/lokai/internal/memory"
	"github.com/lokai-in/lokai/internal/observability"
	"github.com/lokai-in/lokai/internal/prompt"
)

var (
	// ErrEmptyMessage means the caller supplied a blank message; nothing is
	// recorded in memory.
	ErrEmptyMessage = errors.New("message is required")
	// ErrCompletionFailed wraps any completion backend failure. The session
	// keeps the user's turn but no assistant turn.
	ErrCompletionFailed = errors.New("failed to process query")
)

// relevantLawsSentinel is what QueryResult.RelevantLaws carries when any
// knowledge block matched. Not an actual citation list.
const relevantLawsSentinel = "Found relevant legal information"

// QueryResult is the orchestrator's reply for one processed query.
type QueryResult struct {
	Response     string   `json:"response"`
	Topics       []string `json:"topics"`
	RelevantLaws []string `json:"relevant_laws"`
	Suggestions  []string `json:"suggestions"`
}

// SessionStats summarizes one session's accumulated state.
type SessionStats struct {
	MessageCount    int      `json:"message_count"`
	TopicsDiscussed []string `json:"topics_discussed"`
	City            string   `json:"city,omitempty"`
	Language        string   `json:"language,omitempty"`
}

// Options tune orchestrator behavior.
type Options struct {
	// CompletionTimeout bounds the completion round trip. Zero disables the
	// bound, reproducing the original (no independent timeout).
	CompletionTimeout time.Duration
	// SerializeSessions guarantees at most one in-flight query per session
	// id. Off reproduces the original's unsynchronized behavior, where two
	// concurrent queries on one session can both read the recent context
	// before either appends.
	SerializeSessions bool
}

// Orchestrator runs the chat chain. Construct it explicitly and share one
// instance process-wide; there is no package-level singleton.
type Orchestrator struct {
	store   memory.Store
	kb      *knowledge.Base
	client  completion.Client
	metrics *observability.Metrics
	opts    Options

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewOrchestrator(store memory.Store, kb *knowledge.Base, client completion.Client, metrics *observability.Metrics, opts Options) *Orchestrator {
	return &Orchestrator{
		store:   store,
		kb:      kb,
		client:  client,
		metrics: metrics,
		opts:    opts,
		locks:   make(map[string]*sync.Mutex),
	}
}

// ProcessQuery runs the full chain for one inbound message and returns the
// structured reply. On completion failure the user turn stays recorded and
// ErrCompletionFailed is returned.
func (o *Orchestrator) ProcessQuery(ctx context.Context, message, sessionID string, patch memory.ContextPatch) (QueryResult, error) {
	return o.process(ctx, message, sessionID, patch, nil)
}

// ProcessQueryStream behaves like ProcessQuery but forwards completion text
// fragments through onDelta when the backend supports streaming. Backends
// without streaming deliver the full text as a single delta.
func (o *Orchestrator) ProcessQueryStream(ctx context.Context, message, sessionID string, patch memory.ContextPatch, onDelta func(delta string) error) (QueryResult, error) {
	if onDelta == nil {
		return o.process(ctx, message, sessionID, patch, nil)
	}
	return o.process(ctx, message, sessionID, patch, onDelta)
}

func (o *Orchestrator) process(ctx context.Context, message, sessionID string, patch memory.ContextPatch, onDelta func(string) error) (QueryResult, error) {
	if strings.TrimSpace(message) == "" {
		return QueryResult{}, ErrEmptyMessage
	}

	if o.opts.SerializeSessions {
		lock := o.sessionLock(sessionID)
		lock.Lock()
		defer lock.Unlock()
	}

	o.store.MergeContext(sessionID, patch)
	o.store.AddTurn(sessionID, memory.RoleUser, message)

	// Topic extraction and knowledge matching are independent keyword scans
	// over the same message.
	topics := knowledge.ExtractTopics(message)
	relevantKnowledge := o.kb.FindRelevant(message)

	conversationContext := o.store.RecentContext(sessionID)
	userContext := o.store.Memory(sessionID).Context
	systemPrompt := prompt.BuildSystemPrompt(userContext, relevantKnowledge, conversationContext, topics)

	response, err := o.complete(ctx, systemPrompt, message, onDelta)
	if err != nil {
		o.metrics.ChatQueries.WithLabelValues("error").Inc()
		return QueryResult{}, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	o.store.AddTurn(sessionID, memory.RoleAssistant, response)
	o.store.MergeTopics(sessionID, topics)

	o.metrics.ChatQueries.WithLabelValues("ok").Inc()
	for _, topic := range topics {
		o.metrics.TopicsDetected.WithLabelValues(topic).Inc()
	}
	o.metrics.ActiveSessions.Set(float64(o.store.SessionCount()))

	var relevantLaws []string
	if relevantKnowledge != "" {
		relevantLaws = []string{relevantLawsSentinel}
	}

	return QueryResult{
		Response:     response,
		Topics:       topics,
		RelevantLaws: relevantLaws,
		Suggestions:  knowledge.Suggestions(topics),
	}, nil
}

func (o *Orchestrator) complete(ctx context.Context, systemPrompt, message string, onDelta func(string) error) (string, error) {
	if o.opts.CompletionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.CompletionTimeout)
		defer cancel()
	}

	started := time.Now()
	defer func() {
		o.metrics.ObserveCompletionLatency(time.Since(started))
	}()

	if onDelta != nil {
		if streamer, ok := o.client.(completion.Streamer); ok {
			return streamer.CompleteStream(ctx, systemPrompt, message, onDelta)
		}
	}

	text, err := o.client.Complete(ctx, systemPrompt, message)
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

// Stats reports message count, accumulated topics and user context for a
// session. Looking up an unknown session creates it empty.
func (o *Orchestrator) Stats(sessionID string) SessionStats {
	snap := o.store.Memory(sessionID)
	topics := snap.Context.LegalTopics
	if topics == nil {
		topics = []string{}
	}
	return SessionStats{
		MessageCount:    len(snap.Messages),
		TopicsDiscussed: topics,
		City:            snap.Context.City,
		Language:        snap.Context.Language,
	}
}

// ClearSession drops one session's memory. The original application wiped
// the whole store here; the scoped behavior is the corrected contract, with
// Reset kept for the old semantics.
func (o *Orchestrator) ClearSession(sessionID string) {
	o.store.ClearSession(sessionID)
	o.metrics.ActiveSessions.Set(float64(o.store.SessionCount()))
}

// Reset wipes every session.
func (o *Orchestrator) Reset() {
	o.store.Reset()
	o.metrics.ActiveSessions.Set(0)
}

// sessionLock returns the mutex serializing queries for one session id.
// Locks are never removed; a session's lock is a few words and sessions are
// already bounded by the store's TTL policy.
func (o *Orchestrator) sessionLock(sessionID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	lock, ok := o.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[sessionID] = lock
	}
	return lock
}
