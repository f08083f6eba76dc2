// ABOUTME: Thin wrapper over sahilm/fuzzy used for "did you mean" hints
// ABOUTME: Ranks candidates for a mistyped command or builtin name

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one ranked candidate.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find returns the items matching pattern, best first.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Best returns the highest ranked item for a non-empty pattern.
func Best(pattern string, items []string) (string, bool) {
	if pattern == "" {
		return "", false
	}
	matches := Find(pattern, items)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
