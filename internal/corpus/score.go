package corpus

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity scores how well a normalized query matches a normalized search
// key on a [0,1] scale where 0 is an exact or contained match and 1 is no
// resemblance at all. Search keys are typically much longer than queries, so
// a plain edit distance over the whole key would punish every match; instead
// the query is slid across the key and the best window wins, which mirrors
// the substring bias of the original matcher.
func Similarity(query, key string) float64 {
	if query == key {
		return 0
	}
	if query == "" || key == "" {
		return 1
	}
	if strings.Contains(key, query) {
		return 0
	}

	qr := []rune(query)
	kr := []rune(key)

	if len(kr) <= len(qr) {
		return normalizedDistance(query, key, len(qr))
	}

	best := 1.0
	window := len(qr)
	for start := 0; start+window <= len(kr); start++ {
		s := normalizedDistance(query, string(kr[start:start+window]), window)
		if s < best {
			best = s
		}
		if best == 0 {
			break
		}
	}
	return best
}

func normalizedDistance(a, b string, denom int) float64 {
	if denom <= 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	s := float64(d) / float64(denom)
	if s > 1 {
		s = 1
	}
	return s
}
