package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lokai-in/lokai/internal/alerts"
	"github.com/lokai-in/lokai/internal/analysis"
	"github.com/lokai-in/lokai/internal/chat"
	"github.com/lokai-in/lokai/internal/circulars"
	"github.com/lokai-in/lokai/internal/config"
	"github.com/lokai-in/lokai/internal/observability"
)

type Server struct {
	cfg          config.Config
	orchestrator *chat.Orchestrator
	analyzer     *analysis.Analyzer
	circulars    circulars.Store
	alerts       *alerts.Store
	metrics      *observability.Metrics
	upgrader     websocket.Upgrader
}

func New(cfg config.Config, orchestrator *chat.Orchestrator, analyzer *analysis.Analyzer, circularStore circulars.Store, alertStore *alerts.Store, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:          cfg,
		orchestrator: orchestrator,
		analyzer:     analyzer,
		circulars:    circularStore,
		alerts:       alertStore,
		metrics:      metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				// Only allow browser websocket connections from the same
				// origin unless explicitly opened up; other sites must not
				// be able to drive a user's chat session.
				if cfg.AllowAnyOrigin {
					return true
				}
				origin := strings.TrimSpace(r.Header.Get("Origin"))
				if origin == "" {
					// Non-browser clients often omit Origin. Allow them.
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				if u.Scheme != "http" && u.Scheme != "https" {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Post("/v1/chat", s.handleChat)
	r.Get("/v1/chat/ws", s.handleChatWS)
	r.Get("/v1/chat/sessions/{id}/stats", s.handleSessionStats)
	r.Post("/v1/chat/sessions/{id}/clear", s.handleClearSession)

	r.Get("/v1/circulars", s.handleListCirculars)
	r.Post("/v1/circulars", s.handleIngestCircular)

	r.Get("/v1/alerts", s.handleListAlerts)
	r.Post("/v1/alerts", s.handleIngestAlert)
	r.Post("/v1/notifications/urgent", s.handleIngestNotification)

	r.Post("/v1/documents/analyze", s.handleAnalyzeDocument)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"analysis_enabled":   s.analyzer != nil,
		"ingest_enabled":     s.cfg.IngestAPIKey != "",
		"serialize_sessions": s.cfg.SerializeSessions,
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

// requireIngestKey guards the workflow ingest endpoints. With no key
// configured, ingest is effectively disabled and every request is rejected.
func (s *Server) requireIngestKey(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get("X-API-Key")
	if s.cfg.IngestAPIKey == "" || key != s.cfg.IngestAPIKey {
		respondError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing API key")
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errEmptyBody = errors.New("empty body")

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "eof") {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
