package circulars

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore holds circulars in process memory, newest first. The default
// backend when no database is configured; it starts seeded with sample
// circulars so the browse API is never empty in development.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []Circular
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: seedCirculars()}
}

func (s *InMemoryStore) Add(_ context.Context, c Circular) (Circular, error) {
	c = normalize(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Circular{c}, s.items...)
	return c, nil
}

func (s *InMemoryStore) List(_ context.Context, f Filter) ([]Circular, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Circular, 0, len(s.items))
	for _, c := range s.items {
		if !matches(c, f) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *InMemoryStore) Close() error { return nil }

func matches(c Circular, f Filter) bool {
	if f.City != "" && !strings.EqualFold(c.City, f.City) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Summary), q) &&
			!strings.Contains(strings.ToLower(c.Content), q) {
			return false
		}
	}
	return true
}

func normalize(c Circular) Circular {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = "active"
	}
	if c.Category == "" {
		c.Category = "government"
	}
	now := time.Now().UTC()
	if c.PublishedAt.IsZero() {
		c.PublishedAt = now
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.RelevanceScore == 0 {
		c.RelevanceScore = Score(c.Title, c.Content)
	}
	if c.Keywords == nil {
		c.Keywords = Keywords(c.Title + " " + c.Content)
	}
	return c
}

func seedCirculars() []Circular {
	return []Circular{
		{
			ID:             "seed-1",
			Title:          "New Property Tax Assessment Guidelines 2025",
			City:           "Mumbai",
			Category:       "Tax",
			Source:         "Municipal Corporation of Greater Mumbai",
			SourceURL:      "https://portal.mcgm.gov.in",
			Summary:        "Updated property tax calculation methods with new rates for residential and commercial properties. Key changes include revised area calculations and exemption criteria for senior citizens.",
			Priority:       "high",
			Status:         "active",
			RelevanceScore: Score("New Property Tax Assessment Guidelines 2025", ""),
			PublishedAt:    time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "seed-2",
			Title:          "Street Vendor License Renewal Process",
			City:           "Kolkata",
			Category:       "Business",
			Source:         "Kolkata Municipal Corporation",
			SourceURL:      "https://www.kmcgov.in",
			Summary:        "Simplified online process for street vendor license renewal. New guidelines for designated vending zones and compliance requirements.",
			Priority:       "medium",
			Status:         "active",
			RelevanceScore: Score("Street Vendor License Renewal Process", ""),
			PublishedAt:    time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}
}
