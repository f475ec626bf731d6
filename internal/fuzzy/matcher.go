// Package fuzzy provides approximate string matching for correcting user input.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Matcher picks the candidate with the smallest Levenshtein distance to a query.
// Comparison ignores case. Ties go to the earlier candidate.
type Matcher struct {
	// MaxDistance rejects suggestions farther than this many edits. Zero
	// disables the limit.
	MaxDistance int
}

// NewMatcher creates a matcher with the given distance limit.
func NewMatcher(maxDistance int) *Matcher {
	if maxDistance < 0 {
		maxDistance = 0
	}
	return &Matcher{MaxDistance: maxDistance}
}

// BestMatch returns the closest candidate to query. When there are no
// candidates, or the closest one exceeds MaxDistance, query is returned as is.
func (m *Matcher) BestMatch(query string, candidates []string) string {
	best, dist := Closest(query, candidates)
	if dist < 0 {
		return query
	}
	if m != nil && m.MaxDistance > 0 && dist > m.MaxDistance {
		return query
	}
	return best
}

// Closest returns the candidate nearest to query and its edit distance.
// The distance is -1 when candidates is empty.
func Closest(query string, candidates []string) (string, int) {
	q := strings.ToLower(query)
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(q, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}
