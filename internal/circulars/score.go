package circulars

import (
	"strings"
	"unicode"
)

// civicKeywords drive the relevance score. Keywords longer than six
// characters weigh double.
var civicKeywords = []string{
	"citizen", "public", "municipal", "civic", "urban", "city", "town",
	"village", "panchayat", "local government", "administration", "policy",
	"service", "welfare", "development", "infrastructure", "transport",
	"health", "education", "safety", "environment", "water", "electricity",
}

var stopWords = map[string]struct{}{
	"that": {}, "with": {}, "have": {}, "this": {}, "will": {}, "from": {},
	"they": {}, "been": {}, "their": {}, "said": {}, "each": {}, "which": {},
}

const maxKeywords = 10

// Score rates how relevant a circular is to citizens, 0-100.
func Score(title, content string) int {
	text := strings.ToLower(title + " " + content)
	score := 0
	for _, kw := range civicKeywords {
		if strings.Contains(text, kw) {
			if len(kw) > 6 {
				score += 2
			} else {
				score++
			}
		}
	}
	normalized := score * 100 / len(civicKeywords)
	if normalized > 100 {
		normalized = 100
	}
	return normalized
}

// Keywords extracts up to ten distinct lowercase keywords from the text:
// punctuation stripped, words longer than three characters, stop words
// removed, first-seen order.
func Keywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	seen := make(map[string]struct{})
	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
