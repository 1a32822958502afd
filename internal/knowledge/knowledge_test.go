package knowledge

import (
	"strings"
	"testing"
)

func TestExtractTopics(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"rti lowercase", "how do i file an rti application?", []string{"RTI"}},
		{"rti uppercase", "RTI please", []string{"RTI"}},
		{"consumer complaint", "I want to file a consumer complaint", []string{"Consumer Protection"}},
		{"income tax", "income tax deadline", []string{"Income Tax"}},
		{"aadhaar", "update my aadhaar address", []string{"Aadhaar"}},
		{"police fir", "how to file an FIR", []string{"Police Complaint"}},
		{"tenant", "my tenant refuses to pay rent", []string{"Property Law"}},
		{"multiple", "rti complaint about police", []string{"RTI", "Consumer Protection", "Police Complaint"}},
		{"empty", "", nil},
		{"no match", "hello there", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTopics(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractTopics(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ExtractTopics(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestFindRelevantRTI(t *testing.T) {
	b := NewBase()
	got := b.FindRelevant("How do I file an RTI application?")
	if got == "" {
		t.Fatal("expected non-empty knowledge for rti query")
	}
	if !strings.Contains(got, "30 days") {
		t.Fatalf("rti block should contain the 30 days timeline, got %q", got)
	}
	if !strings.Contains(got, "RTI Act 2005") {
		t.Fatalf("rti block should name the act, got %q", got)
	}
}

func TestFindRelevantOrderIsFixed(t *testing.T) {
	b := NewBase()
	got := b.FindRelevant("rti consumer aadhaar police pm kisan")

	order := []string{
		"RTI Act 2005",
		"Consumer Protection Act 2019",
		"Aadhaar Correction Process",
		"Police Complaint Process",
		"PM-KISAN Scheme",
	}
	last := -1
	for _, name := range order {
		idx := strings.Index(got, name)
		if idx < 0 {
			t.Fatalf("missing block %q in output", name)
		}
		if idx < last {
			t.Fatalf("block %q out of order", name)
		}
		last = idx
	}
}

func TestFindRelevantNoMatch(t *testing.T) {
	b := NewBase()
	if got := b.FindRelevant("hello"); got != "" {
		t.Fatalf("expected empty knowledge, got %q", got)
	}
}

func TestFindRelevantComplaintHitsBothConsumerAndPolice(t *testing.T) {
	// "complaint" is a trigger for both blocks; the divergence from the
	// topic rules is intentional.
	b := NewBase()
	got := b.FindRelevant("complaint")
	if !strings.Contains(got, "Consumer Protection Act 2019") {
		t.Fatal("complaint should match the consumer block")
	}
	if !strings.Contains(got, "Police Complaint Process") {
		t.Fatal("complaint should match the police block")
	}
}

func TestSuggestionsCappedAtThree(t *testing.T) {
	got := Suggestions([]string{"RTI", "Consumer Protection", "Aadhaar", "Income Tax"})
	if len(got) != 3 {
		t.Fatalf("len(Suggestions) = %d, want 3", len(got))
	}
	if got[0] != "How to track RTI application status?" {
		t.Fatalf("first suggestion = %q, want the RTI tracker prompt", got[0])
	}
}

func TestSuggestionsUnknownTopic(t *testing.T) {
	if got := Suggestions([]string{"Property Law"}); len(got) != 0 {
		t.Fatalf("expected no suggestions for unlisted topic, got %v", got)
	}
}
