package circulars

import (
	"context"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		zero    bool
	}{
		{"civic heavy", "Municipal water supply policy for citizens", "public infrastructure development", false},
		{"no civic words", "quarterly earnings report", "numbers numbers numbers", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.title, tt.content)
			if got < 0 || got > 100 {
				t.Fatalf("Score out of range: %d", got)
			}
			if tt.zero && got != 0 {
				t.Fatalf("Score = %d, want 0", got)
			}
			if !tt.zero && got == 0 {
				t.Fatal("Score = 0 for civic text")
			}
		})
	}
}

func TestScoreLongKeywordsWeighDouble(t *testing.T) {
	// "infrastructure" (>6 chars) should out-score "water" (<=6 chars).
	long := Score("infrastructure", "")
	short := Score("water", "")
	if long <= short {
		t.Fatalf("long keyword score %d should exceed short keyword score %d", long, short)
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords("New Property-Tax rules: property tax rules that apply from April")
	for _, kw := range got {
		if len(kw) <= 3 {
			t.Fatalf("keyword %q too short", kw)
		}
		if kw == "that" || kw == "from" {
			t.Fatalf("stop word %q not filtered", kw)
		}
	}
	seen := map[string]int{}
	for _, kw := range got {
		seen[kw]++
		if seen[kw] > 1 {
			t.Fatalf("duplicate keyword %q", kw)
		}
	}
}

func TestKeywordsCappedAtTen(t *testing.T) {
	text := "alpha1 bravo2 charlie3 delta4 echo5 foxtrot6 golf7 hotel8 india9 juliet10 kilo11 lima12"
	if got := Keywords(text); len(got) != 10 {
		t.Fatalf("len(Keywords) = %d, want 10", len(got))
	}
}

func TestInMemoryStoreAddAndFilter(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	added, err := s.Add(ctx, Circular{
		Title:   "Water Supply Maintenance Notice",
		Content: "Scheduled municipal water supply interruption for public works.",
		City:    "Delhi",
		Source:  "Delhi Jal Board",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.ID == "" {
		t.Fatal("Add should assign an id")
	}
	if added.Status != "active" {
		t.Fatalf("Status = %q, want active", added.Status)
	}
	if added.RelevanceScore == 0 {
		t.Fatal("Add should compute a relevance score")
	}
	if len(added.Keywords) == 0 {
		t.Fatal("Add should extract keywords")
	}

	byCity, err := s.List(ctx, Filter{City: "delhi"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(byCity) != 1 || byCity[0].ID != added.ID {
		t.Fatalf("city filter returned %d items", len(byCity))
	}

	byQuery, err := s.List(ctx, Filter{Query: "water supply"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(byQuery) != 1 {
		t.Fatalf("query filter returned %d items, want 1", len(byQuery))
	}

	all, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered list = %d items, want 3 (2 seeds + 1 added)", len(all))
	}
	if all[0].ID != added.ID {
		t.Fatal("newest circular should come first")
	}
}

func TestInMemoryStoreSeedFilters(t *testing.T) {
	s := NewInMemoryStore()
	got, err := s.List(context.Background(), Filter{Category: "Tax"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].City != "Mumbai" {
		t.Fatalf("category filter = %+v", got)
	}
}
