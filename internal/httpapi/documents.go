package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/lokai-in/lokai/internal/analysis"
)

type analyzeRequest struct {
	Text     string `json:"text"`
	FileName string `json:"file_name"`
}

func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		respondError(w, http.StatusNotImplemented, "analysis_unavailable", "document analysis requires a JSON-capable completion backend")
		return
	}

	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	result, err := s.analyzer.AnalyzeText(r.Context(), req.FileName, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrEmptyDocument):
			respondError(w, http.StatusBadRequest, "text_required", "document text is required")
		default:
			log.Printf("documents: analysis failed: %v", err)
			respondError(w, http.StatusInternalServerError, "analysis_failed", "failed to analyze document")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    result,
	})
}
