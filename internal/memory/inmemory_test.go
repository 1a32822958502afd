package memory

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestMemoryCreateOnMiss(t *testing.T) {
	s := NewInMemoryStore()
	snap := s.Memory("s1")
	if snap.SessionID != "s1" {
		t.Fatalf("SessionID = %q, want s1", snap.SessionID)
	}
	if len(snap.Messages) != 0 {
		t.Fatalf("fresh session should have no messages, got %d", len(snap.Messages))
	}
	if s.SessionCount() != 1 {
		t.Fatalf("SessionCount = %d, want 1", s.SessionCount())
	}
}

func TestAddTurnCapsAtTen(t *testing.T) {
	s := NewInMemoryStore()
	for i := 0; i < 12; i++ {
		s.AddTurn("s1", RoleUser, fmt.Sprintf("msg-%d", i))
	}
	snap := s.Memory("s1")
	if len(snap.Messages) != 10 {
		t.Fatalf("len(messages) = %d, want 10", len(snap.Messages))
	}
	if snap.Messages[0].Content != "msg-2" {
		t.Fatalf("oldest turn = %q, want msg-2 (FIFO eviction)", snap.Messages[0].Content)
	}
	if snap.Messages[9].Content != "msg-11" {
		t.Fatalf("newest turn = %q, want msg-11", snap.Messages[9].Content)
	}
}

func TestMergeContextEmptyPatchIsNoop(t *testing.T) {
	s := NewInMemoryStore()
	s.MergeContext("s1", ContextPatch{City: "Delhi", Language: "Hindi"})
	s.MergeContext("s1", ContextPatch{})

	snap := s.Memory("s1")
	if snap.Context.City != "Delhi" || snap.Context.Language != "Hindi" {
		t.Fatalf("empty patch changed context: %+v", snap.Context)
	}
}

func TestMergeContextLastWriteWinsPerField(t *testing.T) {
	s := NewInMemoryStore()
	s.MergeContext("s1", ContextPatch{City: "Delhi"})
	s.MergeContext("s1", ContextPatch{Language: "Hindi"})
	s.MergeContext("s1", ContextPatch{City: "Mumbai"})

	snap := s.Memory("s1")
	if snap.Context.City != "Mumbai" {
		t.Fatalf("City = %q, want Mumbai", snap.Context.City)
	}
	if snap.Context.Language != "Hindi" {
		t.Fatalf("Language = %q, want Hindi", snap.Context.Language)
	}
}

func TestMergeTopicsUnionKeepsOrder(t *testing.T) {
	s := NewInMemoryStore()
	s.MergeTopics("s1", []string{"RTI", "Aadhaar"})
	s.MergeTopics("s1", []string{"Aadhaar", "Income Tax"})

	snap := s.Memory("s1")
	want := []string{"RTI", "Aadhaar", "Income Tax"}
	if len(snap.Context.LegalTopics) != len(want) {
		t.Fatalf("topics = %v, want %v", snap.Context.LegalTopics, want)
	}
	for i, topic := range want {
		if snap.Context.LegalTopics[i] != topic {
			t.Fatalf("topics = %v, want %v", snap.Context.LegalTopics, want)
		}
	}
}

func TestRecentContextEmpty(t *testing.T) {
	s := NewInMemoryStore()
	if got := s.RecentContext("s1"); got != "" {
		t.Fatalf("RecentContext on empty session = %q, want empty", got)
	}
}

func TestRecentContextRendersLastFive(t *testing.T) {
	s := NewInMemoryStore()
	for i := 0; i < 7; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		s.AddTurn("s1", role, fmt.Sprintf("msg-%d", i))
	}

	got := s.RecentContext("s1")
	if !strings.HasPrefix(got, "Recent conversation:\n") {
		t.Fatalf("missing header in %q", got)
	}
	lines := strings.Split(got, "\n")[1:]
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5", len(lines))
	}
	if lines[0] != "user: msg-2" {
		t.Fatalf("first line = %q, want %q", lines[0], "user: msg-2")
	}
	if lines[4] != "user: msg-6" {
		t.Fatalf("last line = %q, want %q", lines[4], "user: msg-6")
	}
}

func TestLenDoesNotCreateSession(t *testing.T) {
	s := NewInMemoryStore()
	if got := s.Len("missing"); got != 0 {
		t.Fatalf("Len(missing) = %d, want 0", got)
	}
	if s.SessionCount() != 0 {
		t.Fatalf("SessionCount after Len = %d, want 0", s.SessionCount())
	}

	s.AddTurn("s1", RoleUser, "hello")
	s.AddTurn("s1", RoleAssistant, "hi")
	if got := s.Len("s1"); got != 2 {
		t.Fatalf("Len(s1) = %d, want 2", got)
	}
}

func TestClearSessionIsScoped(t *testing.T) {
	s := NewInMemoryStore()
	s.AddTurn("s1", RoleUser, "hello")
	s.AddTurn("s2", RoleUser, "hello")

	s.ClearSession("s1")
	if got := len(s.Memory("s1").Messages); got != 0 {
		t.Fatalf("s1 messages after clear = %d, want 0", got)
	}
	if got := len(s.Memory("s2").Messages); got != 1 {
		t.Fatalf("s2 messages after clearing s1 = %d, want 1", got)
	}
}

func TestResetWipesAllSessions(t *testing.T) {
	s := NewInMemoryStore()
	s.AddTurn("s1", RoleUser, "hello")
	s.AddTurn("s2", RoleUser, "hello")
	s.Reset()
	if s.SessionCount() != 0 {
		t.Fatalf("SessionCount after Reset = %d, want 0", s.SessionCount())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewInMemoryStore()
	s.AddTurn("s1", RoleUser, "hello")
	snap := s.Memory("s1")
	snap.Messages[0].Content = "mutated"

	if got := s.Memory("s1").Messages[0].Content; got != "hello" {
		t.Fatalf("store content = %q, snapshot mutation leaked", got)
	}
}

func TestJanitorEvictsIdleSessions(t *testing.T) {
	s := NewInMemoryStore(WithTTL(30 * time.Millisecond))
	s.AddTurn("s1", RoleUser, "hello")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.StartJanitor(ctx, 10*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for s.SessionCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("idle session was not evicted")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
