package patterns

import "strings"

// Classify applies every rule to line and returns the accepted matches, ordered
// by rule then by position within the line. The caller is responsible for
// skipping import and comment lines.
func (c *Catalog) Classify(line string) []Match {
	var matches []Match
	for _, rule := range c.rules {
		for _, sub := range rule.Pattern.FindAllStringSubmatch(line, -1) {
			text := sub[1]
			if !accept(rule, text) {
				continue
			}
			matches = append(matches, Match{Rule: rule.Name, Text: text})
		}
	}
	return matches
}

// accept reports whether a captured text is actionable literal text.
func accept(rule Rule, text string) bool {
	if text == "" {
		return false
	}
	// dynamic expression
	if strings.HasPrefix(text, "{") || strings.HasSuffix(text, "}") {
		return false
	}
	for _, reject := range rule.Reject {
		if strings.Contains(text, reject) {
			return false
		}
	}
	return len([]rune(strings.TrimSpace(text))) > 1
}
