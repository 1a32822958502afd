package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lokai-in/lokai/internal/completion"
)

type fakeJSONClient struct {
	reply string
	err   error
	seen  string
}

func (f *fakeJSONClient) Complete(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeJSONClient) CompleteJSON(_ context.Context, systemPrompt string) (string, error) {
	f.seen = systemPrompt
	return f.reply, f.err
}

func TestNewRejectsNonJSONBackend(t *testing.T) {
	if _, err := New(completion.NewMockClient()); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("error = %v, want ErrNotSupported", err)
	}
}

func TestAnalyzeText(t *testing.T) {
	client := &fakeJSONClient{reply: `{"type":"Property Tax Notice","amount_due":"Rs. 4200"}`}
	a, err := New(client)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := a.AnalyzeText(context.Background(), "notice.pdf", "PROPERTY TAX NOTICE for plot 12")
	if err != nil {
		t.Fatalf("AnalyzeText() error = %v", err)
	}
	if res.FileName != "notice.pdf" {
		t.Fatalf("FileName = %q", res.FileName)
	}
	if !strings.Contains(string(res.Analysis), "Property Tax Notice") {
		t.Fatalf("Analysis = %s", res.Analysis)
	}
	if !strings.Contains(client.seen, "PROPERTY TAX NOTICE for plot 12") {
		t.Fatal("document text not embedded in the analysis prompt")
	}
}

func TestAnalyzeTextEmpty(t *testing.T) {
	a, _ := New(&fakeJSONClient{reply: "{}"})
	if _, err := a.AnalyzeText(context.Background(), "", "   "); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("error = %v, want ErrEmptyDocument", err)
	}
}

func TestAnalyzeTextProviderFailure(t *testing.T) {
	a, _ := New(&fakeJSONClient{err: errors.New("rate limited")})
	if _, err := a.AnalyzeText(context.Background(), "f", "text body here"); !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("error = %v, want ErrAnalysisFailed", err)
	}
}

func TestAnalyzeTextInvalidJSON(t *testing.T) {
	a, _ := New(&fakeJSONClient{reply: "not json"})
	if _, err := a.AnalyzeText(context.Background(), "f", "text body here"); !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("error = %v, want ErrAnalysisFailed", err)
	}
}
