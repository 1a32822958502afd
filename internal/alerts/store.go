package alerts

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds alerts and notifications in process memory, newest first.
// Seeded with sample alerts so the browse API has content in development.
type Store struct {
	mu            sync.RWMutex
	alerts        []Alert
	notifications []Notification
}

func NewStore() *Store {
	return &Store{alerts: seedAlerts()}
}

func (s *Store) AddAlert(a Alert) Alert {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Severity = normalize(a.Severity)
	if a.Type == "" {
		a.Type = "general"
	}
	if a.Source == "" {
		a.Source = "monitoring"
	}
	a.Active = true
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now().UTC()
	}
	if a.Tags == nil {
		a.Tags = Tags(a.Title, a.Description, a.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append([]Alert{a}, s.alerts...)
	return a
}

func (s *Store) ListAlerts(f Filter) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if f.City != "" && !strings.EqualFold(a.City, f.City) {
			continue
		}
		if f.Severity != "" && a.Severity != normalize(f.Severity) {
			continue
		}
		if f.ActiveOnly && !a.Active {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Store) AddNotification(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.Priority = normalize(n.Priority)
	if n.Type == "" {
		n.Type = "general"
	}
	if n.Source == "" {
		n.Source = "monitoring"
	}
	if n.ReceivedAt.IsZero() {
		n.ReceivedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]Notification{n}, s.notifications...)
	return n
}

func (s *Store) ListNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func normalize(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

func contains(valid []string, level string) bool {
	level = normalize(level)
	for _, v := range valid {
		if v == level {
			return true
		}
	}
	return false
}

func seedAlerts() []Alert {
	now := time.Now().UTC()
	return []Alert{
		{
			ID:          "seed-alert-1",
			Title:       "Traffic Disruption on Ring Road",
			Description: "Major traffic disruption due to road construction",
			City:        "Delhi",
			Severity:    "medium",
			Type:        "traffic",
			Source:      "monitoring",
			Active:      true,
			Tags:        Tags("Traffic Disruption on Ring Road", "Major traffic disruption due to road construction", "traffic"),
			PublishedAt: now.Add(-time.Hour),
		},
		{
			ID:          "seed-alert-2",
			Title:       "Water Supply Interruption",
			Description: "Scheduled water supply maintenance",
			City:        "Mumbai",
			Severity:    "high",
			Type:        "utility",
			Source:      "monitoring",
			Active:      true,
			Tags:        Tags("Water Supply Interruption", "Scheduled water supply maintenance", "utility"),
			PublishedAt: now.Add(-30 * time.Minute),
		},
	}
}
