package catalog

import (
	"sort"
	"strings"
)

// Filter returns the components matching queryText, optionally limited to scope,
// ordered by usage count descending. Ties keep their input order.
//
// queryText is trimmed and matched case-insensitively as a substring of the name,
// description, type or any keyword; a blank query matches everything. A non-empty scope keeps
// components whose category or parent category equals it.
func Filter(components []Component, queryText, scope string) []Component {
	needle := strings.ToLower(strings.TrimSpace(queryText))

	result := make([]Component, 0, len(components))
	for _, c := range components {
		if scope != "" && c.Category != scope && c.ParentCategory != scope {
			continue
		}
		if !Matches(c, needle) {
			continue
		}
		result = append(result, c)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UsageCount > result[j].UsageCount
	})
	return result
}

// HasQuery reports whether queryText filters anything. A blank query is browsing.
func HasQuery(queryText string) bool {
	return strings.TrimSpace(queryText) != ""
}

// Matches reports whether c matches an already lower-cased query.
func Matches(c Component, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(string(c.Type())), lowerQuery) {
		return true
	}
	for _, k := range c.Keywords {
		if strings.Contains(strings.ToLower(k), lowerQuery) {
			return true
		}
	}
	return false
}
