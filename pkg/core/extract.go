package core

import "strings"

// FindBestMatch scans text case-insensitively for each candidate's canonical
// name as a plain substring and returns the candidate occurring earliest
// (preferEarliest) or latest in the text. On position ties the first
// candidate in catalog order is retained under the earliest rule and the
// last one wins under the latest rule. The second return value is false
// when no candidate matches.
func FindBestMatch(text string, candidates []Entity, preferEarliest bool) (Entity, bool) {
	lower := strings.ToLower(text)

	var match Entity
	best := -1
	found := false
	for _, c := range candidates {
		idx := strings.Index(lower, strings.ToLower(c.Name))
		if idx < 0 {
			continue
		}
		if !found {
			match, best, found = c, idx, true
			continue
		}
		if (preferEarliest && idx < best) || (!preferEarliest && idx >= best) {
			match, best = c, idx
		}
	}
	return match, found
}
