// Package circulars stores and scores government circulars received from
// the scraping workflow.
package circulars

import (
	"context"
	"time"
)

// Circular is one published government circular.
type Circular struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	City           string    `json:"city,omitempty"`
	Category       string    `json:"category"`
	Source         string    `json:"source"`
	SourceURL      string    `json:"source_url,omitempty"`
	Priority       string    `json:"priority,omitempty"`
	Status         string    `json:"status"`
	RelevanceScore int       `json:"relevance_score"`
	Keywords       []string  `json:"keywords,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// Filter narrows List results. Zero-valued fields match everything.
type Filter struct {
	City     string
	Category string
	Query    string
}

// Store persists circulars.
type Store interface {
	Add(ctx context.Context, c Circular) (Circular, error)
	List(ctx context.Context, f Filter) ([]Circular, error)
	Close() error
}
