package alerts

import "strings"

// tagRule marks an alert with a tag when any keyword appears in its text.
type tagRule struct {
	keywords []string
	tag      string
}

var tagRules = []tagRule{
	{[]string{"emergency", "urgent"}, "emergency"},
	{[]string{"traffic", "road"}, "traffic"},
	{[]string{"water", "supply"}, "utility"},
	{[]string{"power", "electricity"}, "power"},
	{[]string{"weather", "rain"}, "weather"},
	{[]string{"safety", "security"}, "safety"},
	{[]string{"health", "medical"}, "health"},
}

// Tags derives content tags from the alert title, description and type.
// The type is always included; duplicates are dropped.
func Tags(title, description, typ string) []string {
	content := strings.ToLower(title + " " + description)
	var tags []string
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(content, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	if typ != "" {
		tags = append(tags, typ)
	}

	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
