package httpapi

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/lokai-in/lokai/internal/circulars"
)

type circularRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	SourceURL   string `json:"source_url"`
	Priority    string `json:"priority"`
	PublishedAt string `json:"published_at"`
}

func (s *Server) handleListCirculars(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := circulars.Filter{
		City:     q.Get("city"),
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}

	list, err := s.circulars.List(r.Context(), f)
	if err != nil {
		log.Printf("circulars: list failed: %v", err)
		respondError(w, http.StatusInternalServerError, "circulars_failed", "failed to list circulars")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"circulars": list,
		"count":     len(list),
	})
}

func (s *Server) handleIngestCircular(w http.ResponseWriter, r *http.Request) {
	if !s.requireIngestKey(w, r) {
		return
	}

	var req circularRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" || strings.TrimSpace(req.Source) == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "title, content and source are required")
		return
	}

	c := circulars.Circular{
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		City:      req.City,
		Category:  req.Category,
		Source:    req.Source,
		SourceURL: req.SourceURL,
		Priority:  req.Priority,
	}
	if req.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.PublishedAt); err == nil {
			c.PublishedAt = t
		}
	}

	saved, err := s.circulars.Add(r.Context(), c)
	if err != nil {
		log.Printf("circulars: ingest failed: %v", err)
		respondError(w, http.StatusInternalServerError, "circulars_failed", "failed to store circular")
		return
	}

	s.metrics.IngestReceived.WithLabelValues("circular").Inc()
	respondJSON(w, http.StatusCreated, map[string]any{
		"success":         true,
		"message":         "circular processed successfully",
		"id":              saved.ID,
		"relevance_score": saved.RelevanceScore,
	})
}
