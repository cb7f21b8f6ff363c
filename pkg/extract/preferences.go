package extract

import "strings"

// preferenceIndicators is the fixed set of phrases that mark a sentence as
// expressing a user preference
var preferenceIndicators = []string{
	"prefer", "like", "don't like", "dislike",
	"want", "need", "require", "must have",
}

// ExtractPreferences collects sentence-like segments containing a
// preference indicator, splitting on ".". A segment matching several
// indicators is collected once per indicator; duplicates are part of the
// observable contract and are kept.
func ExtractPreferences(text string) []string {
	lower := strings.ToLower(text)

	var preferences []string
	for _, indicator := range preferenceIndicators {
		if !strings.Contains(lower, indicator) {
			continue
		}
		for _, sentence := range strings.Split(text, ".") {
			if strings.Contains(strings.ToLower(sentence), indicator) {
				preferences = append(preferences, strings.TrimSpace(sentence))
			}
		}
	}
	return preferences
}
