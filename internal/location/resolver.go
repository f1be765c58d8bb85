package location

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"tourbot/internal/corpus"
	"tourbot/internal/vntext"
)

// DefaultRejectThreshold is the score above which the last-resort fuzzy
// guess is discarded. Looser than the corpus acceptance threshold because
// this tier only runs when every stricter tier came up empty. Empirically
// chosen; configurable rather than assumed optimal.
const DefaultRejectThreshold = 0.6

// Resolver turns free text into a canonical place name. A nil result means
// "no location asserted this turn", never "no location" in an absolute
// sense: callers keep whatever the session already knew.
type Resolver struct {
	table       *Table
	typos       []TypoPattern
	rejectAbove float64
}

// NewResolver builds a Resolver over a canonical table and a hard-typo
// table. rejectAbove <= 0 falls back to DefaultRejectThreshold.
func NewResolver(table *Table, typos []TypoPattern, rejectAbove float64) *Resolver {
	if rejectAbove <= 0 {
		rejectAbove = DefaultRejectThreshold
	}
	return &Resolver{table: table, typos: typos, rejectAbove: rejectAbove}
}

// Resolve runs the tiers in strict priority order, each one only when the
// previous yielded nothing:
//
//  1. hard-typo patterns, first table entry wins
//  2. canonical alias containment, longest alias wins
//  3. substring scan over destination cities with all non-alphanumerics
//     stripped, longest city wins
//  4. single best fuzzy match over the destinations corpus, discarded when
//     its score exceeds the reject threshold
//
// Returns "" when no tier produces a result.
func (r *Resolver) Resolve(text string, destinations *corpus.Index[corpus.Destination]) string {
	query := vntext.Normalize(text)
	if query == "" {
		return ""
	}

	if name := r.matchHardTypo(query); name != "" {
		return name
	}

	if loc := r.table.BestAliasMatch(query); loc != nil {
		return loc.Name
	}

	if city := matchDestinationCity(query, destinations); city != "" {
		return city
	}

	return r.fuzzyFallback(query, destinations)
}

func (r *Resolver) matchHardTypo(query string) string {
	for _, typo := range r.typos {
		for _, pattern := range typo.Patterns {
			if pattern != "" && strings.Contains(query, pattern) {
				return typo.Name
			}
		}
	}
	return ""
}

// matchDestinationCity compares alphanumeric-only forms, so "tp.ca mau!"
// still finds "Cà Mau". Works over free-form corpus data rather than the
// curated table, with the same longest-match policy applied independently.
func matchDestinationCity(query string, destinations *corpus.Index[corpus.Destination]) string {
	if destinations == nil {
		return ""
	}
	qClean := vntext.StripNonAlnum(query)

	bestCity := ""
	bestLen := 0
	for _, d := range destinations.Records() {
		if d.City == "" {
			continue
		}
		cityNorm := vntext.StripNonAlnum(vntext.Normalize(d.City))
		if len(cityNorm) < minAliasLen || len(cityNorm) <= bestLen {
			continue
		}
		if strings.Contains(qClean, cityNorm) {
			bestLen = len(cityNorm)
			bestCity = d.City
		}
	}
	return bestCity
}

// fuzzyFallback scores the query against each destination's city and name as
// whole strings. The corpus search-key scorer is deliberately not reused
// here: its substring-window bias is right for retrieval but over-accepts
// short queries when the question is "is this text itself a place name".
func (r *Resolver) fuzzyFallback(query string, destinations *corpus.Index[corpus.Destination]) string {
	if destinations == nil {
		return ""
	}

	bestScore := 0.0
	var best *corpus.Destination
	for i := range destinations.Records() {
		d := &destinations.Records()[i]
		for _, candidate := range []string{d.City, d.Name} {
			s := placeNameScore(query, vntext.Normalize(candidate))
			if best == nil || s < bestScore {
				best = d
				bestScore = s
			}
		}
	}

	if best == nil || bestScore > r.rejectAbove {
		return ""
	}
	if best.City != "" {
		return best.City
	}
	return best.Name
}

// placeNameScore is edit distance normalized by the longer operand, so a
// short query cannot look close to a long place name (or vice versa) just by
// being short.
func placeNameScore(query, candidate string) float64 {
	if candidate == "" {
		return 1
	}
	if query == candidate {
		return 0
	}
	denom := len([]rune(query))
	if l := len([]rune(candidate)); l > denom {
		denom = l
	}
	s := float64(levenshtein.ComputeDistance(query, candidate)) / float64(denom)
	if s > 1 {
		s = 1
	}
	return s
}
