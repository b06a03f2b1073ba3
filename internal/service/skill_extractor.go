package service

import "strings"

// SkillExtractor finds known skill keywords in free text.
//
// Matching is a case-insensitive substring test with no word boundaries, so
// "Java" is reported for a resume that only mentions JavaScript.
type SkillExtractor struct {
	skills []string
	lower  []string
}

func NewSkillExtractor(skills []string) *SkillExtractor {
	lower := make([]string, len(skills))
	for i, s := range skills {
		lower[i] = strings.ToLower(s)
	}
	return &SkillExtractor{skills: skills, lower: lower}
}

// Extract returns the matched skills in keyword-list order.
func (e *SkillExtractor) Extract(text string) []string {
	haystack := strings.ToLower(text)
	found := make([]string, 0)
	for i, needle := range e.lower {
		if strings.Contains(haystack, needle) {
			found = append(found, e.skills[i])
		}
	}
	return found
}
