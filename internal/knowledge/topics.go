package knowledge

import "strings"

// topicRule maps trigger keywords to a coarse legal-domain tag. Any keyword
// appearing as a substring of the query fires the topic.
type topicRule struct {
	keywords []string
	topic    string
}

// Rule order is fixed so detected topics come back in a deterministic order.
// The trigger words deliberately overlap with, but are maintained separately
// from, the knowledge matcher triggers in matcher.go.
var topicRules = []topicRule{
	{[]string{"rti", "information"}, "RTI"},
	{[]string{"consumer", "complaint"}, "Consumer Protection"},
	{[]string{"tax", "income"}, "Income Tax"},
	{[]string{"aadhaar", "identity"}, "Aadhaar"},
	{[]string{"police", "fir"}, "Police Complaint"},
	{[]string{"tenant", "rent"}, "Property Law"},
}

// ExtractTopics returns the legal-domain tags detected in the query via
// case-insensitive substring matching. Multiple topics may fire; an empty
// query yields no topics.
func ExtractTopics(query string) []string {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return nil
	}

	var topics []string
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				topics = append(topics, rule.topic)
				break
			}
		}
	}
	return topics
}
