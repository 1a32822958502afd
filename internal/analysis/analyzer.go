// Package analysis turns extracted document text into a structured summary
// via a JSON-constrained completion. Text extraction itself (PDF parsing,
// OCR) happens upstream; this package only sees plain text.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lokai-in/lokai/internal/completion"
	"github.com/lokai-in/lokai/internal/prompt"
)

var (
	ErrEmptyDocument  = errors.New("document text is required")
	ErrNotSupported   = errors.New("completion backend cannot produce JSON analyses")
	ErrAnalysisFailed = errors.New("failed to analyze document")
)

// Result carries the provider's structured analysis. The JSON shape is
// defined by the analysis prompt and passed through opaquely.
type Result struct {
	FileName string          `json:"file_name,omitempty"`
	Chars    int             `json:"chars"`
	Analysis json.RawMessage `json:"analysis"`
}

// Analyzer runs document analyses against a JSON-capable completion backend.
type Analyzer struct {
	completer completion.JSONCompleter
}

// New returns an analyzer, or an ErrNotSupported error when the supplied
// client cannot produce JSON output (e.g. the mock backend).
func New(client completion.Client) (*Analyzer, error) {
	jc, ok := client.(completion.JSONCompleter)
	if !ok {
		return nil, ErrNotSupported
	}
	return &Analyzer{completer: jc}, nil
}

// AnalyzeText analyzes already-extracted document text.
func (a *Analyzer) AnalyzeText(ctx context.Context, fileName, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyDocument
	}

	raw, err := a.completer.CompleteJSON(ctx, prompt.BuildAnalysisPrompt(text))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	var obj json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return Result{}, fmt.Errorf("%w: invalid JSON from provider: %v", ErrAnalysisFailed, err)
	}

	return Result{
		FileName: fileName,
		Chars:    len(text),
		Analysis: obj,
	}, nil
}
