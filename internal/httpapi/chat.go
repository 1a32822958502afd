package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lokai-in/lokai/internal/chat"
	"github.com/lokai-in/lokai/internal/memory"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	City      string `json:"city"`
	Language  string `json:"language"`
	Context   any    `json:"context"`
}

type chatData struct {
	Response     string   `json:"response"`
	Suggestions  []string `json:"suggestions"`
	Actions      []string `json:"actions"`
	Topics       []string `json:"topics"`
	RelevantLaws []string `json:"relevant_laws"`
	SessionID    string   `json:"session_id"`
}

type chatResponse struct {
	Success bool     `json:"success"`
	Data    chatData `json:"data"`
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message_required", "message is required")
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = newSessionID()
	}

	patch := memory.ContextPatch{
		City:            req.City,
		Language:        req.Language,
		DocumentContext: req.Context,
	}

	result, err := s.orchestrator.ProcessQuery(r.Context(), req.Message, sessionID, patch)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			respondError(w, http.StatusBadRequest, "message_required", "message is required")
			return
		}
		respondError(w, http.StatusInternalServerError, "chat_failed", "failed to get response from assistant")
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{
		Success: true,
		Data: chatData{
			Response:     result.Response,
			Suggestions:  result.Suggestions,
			Actions:      []string{},
			Topics:       result.Topics,
			RelevantLaws: result.RelevantLaws,
			SessionID:    sessionID,
		},
	})
}

func (s *Server) handleSessionStats(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	stats := s.orchestrator.Stats(sessionID)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    stats,
	})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	s.orchestrator.ClearSession(sessionID)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "session cleared",
	})
}
