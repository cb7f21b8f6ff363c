package extract

import (
	"regexp"
	"strings"
)

// triggerPattern detects explicit recall requests. The keyword match is
// case-insensitive here; the dispatcher itself requires the exact
// "REX, " marker when it parses the phrase.
var triggerPattern = regexp.MustCompile(`(?i)REX,\s+(recall|remember|what did we say about|update on)\s+(.+)`)

// Trigger describes a detected memory trigger phrase
type Trigger struct {
	Type  string // lowercased keyword, e.g. "recall" or "update on"
	Topic string
	Full  string
}

// DetectTrigger reports whether the text contains a memory trigger phrase
func DetectTrigger(text string) (*Trigger, bool) {
	m := triggerPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	return &Trigger{
		Type:  strings.ToLower(m[1]),
		Topic: strings.TrimSpace(m[2]),
		Full:  m[0],
	}, true
}
