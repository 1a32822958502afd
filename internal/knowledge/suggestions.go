package knowledge

const maxSuggestions = 3

// suggestionTable holds follow-up prompts per topic. Only topics with an
// entry contribute suggestions.
var suggestionTable = map[string][]string{
	"RTI": {
		"How to track RTI application status?",
		"What are RTI exemptions under Section 8?",
	},
	"Consumer Protection": {
		"How to file online consumer complaint?",
		"What documents needed for consumer case?",
	},
	"Aadhaar": {
		"How to link Aadhaar with bank account?",
		"What if Aadhaar update is rejected?",
	},
	"Income Tax": {
		"How to file ITR online?",
		"What are tax saving options under 80C?",
	},
}

// Suggestions returns up to three follow-up prompts for the detected topics,
// taken in topic order.
func Suggestions(topics []string) []string {
	var out []string
	for _, topic := range topics {
		out = append(out, suggestionTable[topic]...)
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
