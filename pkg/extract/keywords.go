package extract

import (
	"regexp"
	"sort"
	"strings"
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "to": {}, "a": {}, "of": {},
	"for": {}, "with": {}, "on": {}, "at": {}, "from": {}, "by": {},
	"about": {}, "as": {},
}

// ExtractKeywords returns up to maxKeywords frequent words from the text,
// most frequent first. Ties keep first occurrence order.
func ExtractKeywords(text string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}

	counts := map[string]int{}
	var order []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, ok := stopwords[word]; ok {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
