// Package alerts tracks city alerts and urgent notifications pushed by the
// monitoring workflow.
package alerts

import "time"

// Severity levels accepted for alerts, lowest to highest.
var ValidSeverities = []string{"low", "medium", "high", "critical"}

// Priority levels accepted for notifications.
var ValidPriorities = []string{"low", "medium", "high", "critical", "emergency"}

// Alert is one city-scoped advisory.
type Alert struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	City          string    `json:"city"`
	Severity      string    `json:"severity"`
	Type          string    `json:"type"`
	Source        string    `json:"source"`
	Active        bool      `json:"is_active"`
	Tags          []string  `json:"tags,omitempty"`
	AffectedAreas []string  `json:"affected_areas,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
}

// Notification is an urgent broadcast not tied to a single city.
type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Priority   string    `json:"priority"`
	Type       string    `json:"type"`
	Source     string    `json:"source"`
	ReceivedAt time.Time `json:"received_at"`
}

// Filter narrows alert listings. Zero-valued fields match everything;
// ActiveOnly defaults to true at the API layer.
type Filter struct {
	City       string
	Severity   string
	ActiveOnly bool
}

// ValidSeverity reports whether s is an accepted severity (case-insensitive).
func ValidSeverity(s string) bool { return contains(ValidSeverities, s) }

// ValidPriority reports whether p is an accepted priority (case-insensitive).
func ValidPriority(p string) bool { return contains(ValidPriorities, p) }

// Urgent reports whether a severity or priority warrants immediate fan-out.
func Urgent(level string) bool {
	switch normalize(level) {
	case "high", "critical", "emergency":
		return true
	}
	return false
}
