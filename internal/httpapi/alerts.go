package httpapi

import (
	"net/http"
	"strings"

	"github.com/lokai-in/lokai/internal/alerts"
)

type alertRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	City          string   `json:"city"`
	Severity      string   `json:"severity"`
	Type          string   `json:"type"`
	Source        string   `json:"source"`
	AffectedAreas []string `json:"affected_areas"`
}

type notificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Source   string `json:"source"`
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := alerts.Filter{
		City:       q.Get("city"),
		Severity:   q.Get("severity"),
		ActiveOnly: q.Get("active") != "false",
	}

	list := s.alerts.ListAlerts(f)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alerts":  list,
		"count":   len(list),
	})
}

func (s *Server) handleIngestAlert(w http.ResponseWriter, r *http.Request) {
	if !s.requireIngestKey(w, r) {
		return
	}

	var req alertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Severity) == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "title, city and severity are required")
		return
	}
	if !alerts.ValidSeverity(req.Severity) {
		respondError(w, http.StatusBadRequest, "invalid_severity", "severity must be one of: "+strings.Join(alerts.ValidSeverities, ", "))
		return
	}

	saved := s.alerts.AddAlert(alerts.Alert{
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Severity:      req.Severity,
		Type:          req.Type,
		Source:        req.Source,
		AffectedAreas: req.AffectedAreas,
	})

	s.metrics.IngestReceived.WithLabelValues("alert").Inc()
	if alerts.Urgent(saved.Severity) {
		s.metrics.UrgentAlerts.Inc()
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "alert processed successfully",
		"id":       saved.ID,
		"severity": saved.Severity,
		"urgent":   alerts.Urgent(saved.Severity),
	})
}

func (s *Server) handleIngestNotification(w http.ResponseWriter, r *http.Request) {
	if !s.requireIngestKey(w, r) {
		return
	}

	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.Priority) == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "title, message and priority are required")
		return
	}
	if !alerts.ValidPriority(req.Priority) {
		respondError(w, http.StatusBadRequest, "invalid_priority", "priority must be one of: "+strings.Join(alerts.ValidPriorities, ", "))
		return
	}

	saved := s.alerts.AddNotification(alerts.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Priority: req.Priority,
		Type:     req.Type,
		Source:   req.Source,
	})

	s.metrics.IngestReceived.WithLabelValues("notification").Inc()
	if alerts.Urgent(saved.Priority) {
		s.metrics.UrgentAlerts.Inc()
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "urgent notification processed",
		"id":       saved.ID,
		"priority": saved.Priority,
		"urgent":   alerts.Urgent(saved.Priority),
	})
}
