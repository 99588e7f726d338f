// Package textmatch provides the fuzzy string comparison primitive shared by
// every scorer: a normalized similarity ratio, a thresholded equality check,
// and a best-key lookup for aligning independently-authored vocabularies.
package textmatch

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum similarity (0-100) for two labels to be
// considered the same term.
const DefaultThreshold = 70

// Similarity returns a case-insensitive similarity ratio in [0,100] based on
// edit-distance character alignment. Empty input scores 0.
func Similarity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.Ratio(strings.ToLower(a), strings.ToLower(b))
}

// Equal reports whether two labels are the same term under the given
// threshold. A threshold <= 0 falls back to DefaultThreshold.
func Equal(a, b string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Similarity(a, b) >= threshold
}

// BestKey finds the key of m most similar to query. It returns the key, its
// similarity, and whether the similarity met the threshold. The search is
// greedy and non-exclusive: repeated calls may resolve different queries to
// the same key. Ties break on the lexicographically smaller key so results
// are reproducible across runs.
func BestKey[V any](query string, m map[string]V, threshold int) (string, int, bool) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	bestKey := ""
	bestScore := -1
	for key := range m {
		score := Similarity(query, key)
		if score > bestScore || (score == bestScore && key < bestKey) {
			bestScore = score
			bestKey = key
		}
	}
	if bestScore < threshold {
		return "", bestScore, false
	}
	return bestKey, bestScore, true
}
