package extract

import (
	"regexp"
	"strings"
)

// Entities holds named entities detected in a text, grouped by kind.
// Each list is deduplicated with first occurrence order preserved.
type Entities struct {
	People   []string
	Topics   []string
	Things   []string
	Projects []string
}

var (
	namePattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	techPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9]+(?:\.js|\.py|\.NET)?\b`)

	topicIndicators   = []string{"about", "regarding", "concerning", "on the topic of"}
	projectIndicators = []string{"project", "initiative", "task", "assignment"}
)

// ExtractEntities detects people, topics, things and projects using pattern
// matching. This is intentionally shallow; a production deployment would put
// a real NER model behind the same signature.
func ExtractEntities(text string) Entities {
	var e Entities

	e.People = dedup(namePattern.FindAllString(text, -1))

	var topics []string
	for _, indicator := range topicIndicators {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(indicator) + ` ([A-Za-z0-9 ]+)`)
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			topics = append(topics, m[1])
		}
	}
	e.Topics = dedup(topics)

	var projects []string
	for _, indicator := range projectIndicators {
		before := regexp.MustCompile(`(?i)([A-Za-z0-9 ]+) ` + regexp.QuoteMeta(indicator))
		for _, m := range before.FindAllStringSubmatch(text, -1) {
			projects = append(projects, m[1])
		}

		after := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(indicator) + ` ([A-Za-z0-9 ]+)`)
		for _, m := range after.FindAllStringSubmatch(text, -1) {
			projects = append(projects, m[1])
		}
	}
	e.Projects = dedup(projects)

	e.Things = dedup(techPattern.FindAllString(text, -1))

	return e
}

func dedup(items []string) []string {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
