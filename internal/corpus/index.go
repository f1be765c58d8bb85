package corpus

import (
	"sort"
	"strings"

	"tourbot/internal/vntext"
)

// DefaultMatchThreshold is the acceptance threshold for approximate matches.
// Scores above it are rejected as non-matches. Empirically chosen in the
// original dataset tuning; override with WithThreshold when needed.
const DefaultMatchThreshold = 0.35

// Index wraps an immutable list of records with normalized search keys and
// exposes approximate-string search. Both search operations are pure reads;
// an Index is safe for concurrent use once built.
type Index[T any] struct {
	records   []T
	keys      []string // normalized search keys, parallel to records
	keyFn     func(T) string
	locFn     func(T) string
	threshold float64
}

// Option configures an Index at build time.
type Option[T any] func(*Index[T])

// WithThreshold overrides the fuzzy acceptance threshold.
func WithThreshold[T any](threshold float64) Option[T] {
	return func(ix *Index[T]) {
		if threshold > 0 {
			ix.threshold = threshold
		}
	}
}

// WithLocationText supplies the extractor for the record field that carries
// a place name (city for foods/destinations, joined destinations for tours).
// Without it FilterByLocation always yields an empty index.
func WithLocationText[T any](fn func(T) string) Option[T] {
	return func(ix *Index[T]) {
		ix.locFn = fn
	}
}

// NewIndex builds an index over records, deriving one normalized search key
// per record via keyFn. The records slice is treated as immutable from here
// on; callers must not mutate it after handing it over.
func NewIndex[T any](records []T, keyFn func(T) string, opts ...Option[T]) *Index[T] {
	ix := &Index[T]{
		records:   records,
		keyFn:     keyFn,
		threshold: DefaultMatchThreshold,
	}
	for _, opt := range opts {
		opt(ix)
	}

	ix.keys = make([]string, len(records))
	for i, rec := range records {
		ix.keys[i] = vntext.Normalize(keyFn(rec))
	}
	return ix
}

// Len returns the number of records in the index.
func (ix *Index[T]) Len() int { return len(ix.records) }

// Records returns the underlying record list in storage order. The slice is
// shared with the index and must be treated as read-only.
func (ix *Index[T]) Records() []T { return ix.records }

// TopMatches returns up to limit records approximately matching the
// normalized query, best first. An empty query returns the first limit
// records in storage order as a deterministic default, not a ranking.
func (ix *Index[T]) TopMatches(query string, limit int) []T {
	if limit <= 0 || len(ix.records) == 0 {
		return nil
	}

	query = vntext.Normalize(query)
	if query == "" {
		return ix.head(limit)
	}

	type scored struct {
		idx   int
		score float64
	}
	var hits []scored
	for i, key := range ix.keys {
		s := Similarity(query, key)
		if s <= ix.threshold {
			hits = append(hits, scored{idx: i, score: s})
		}
	}

	// Stable sort keeps storage order among equal scores.
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score < hits[b].score })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = ix.records[h.idx]
	}
	return out
}

// Best returns the single best-scoring record for the query and its score.
// ok is false when the index is empty or the query normalizes to nothing.
// Unlike TopMatches, Best does not apply the acceptance threshold; callers
// decide what score is still trustworthy for their purpose.
func (ix *Index[T]) Best(query string) (rec T, score float64, ok bool) {
	query = vntext.Normalize(query)
	if query == "" || len(ix.records) == 0 {
		return rec, 0, false
	}

	bestIdx, bestScore := -1, 0.0
	for i, key := range ix.keys {
		s := Similarity(query, key)
		if bestIdx == -1 || s < bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return ix.records[bestIdx], bestScore, true
}

// FilterByLocation returns a sub-index containing only the records whose
// location text contains the normalized location string. The sub-index
// shares the parent's extractors and threshold, so it can be searched again
// with TopMatches. May be empty.
func (ix *Index[T]) FilterByLocation(locationName string) *Index[T] {
	sub := &Index[T]{
		keyFn:     ix.keyFn,
		locFn:     ix.locFn,
		threshold: ix.threshold,
	}
	loc := vntext.Normalize(locationName)
	if loc == "" || ix.locFn == nil {
		return sub
	}

	for i, rec := range ix.records {
		if containsNormalized(ix.locFn(rec), loc) {
			sub.records = append(sub.records, rec)
			sub.keys = append(sub.keys, ix.keys[i])
		}
	}
	return sub
}

func (ix *Index[T]) head(limit int) []T {
	if limit > len(ix.records) {
		limit = len(ix.records)
	}
	out := make([]T, limit)
	copy(out, ix.records[:limit])
	return out
}

func containsNormalized(haystack, normalizedNeedle string) bool {
	return normalizedNeedle != "" && strings.Contains(vntext.Normalize(haystack), normalizedNeedle)
}
