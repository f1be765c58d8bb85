// Package location resolves free text to a canonical Vietnamese place name.
// Resolution is tiered: a curated hard-typo table, the canonical alias table,
// a substring scan over destination cities, and finally a fuzzy guess over
// the destinations corpus that is discarded when too weak.
package location

// Location is one entry of the canonical place table. Identity is ID; the
// candidate alias set for matching is {Name} ∪ Aliases. No two locations
// share an alias (a data invariant of the curated table, not enforced at
// runtime).
type Location struct {
	ID      string
	Name    string
	Aliases []string
}

// TypoPattern maps common heavy misspellings straight to a canonical name.
// The table is ordered; the first matching entry wins.
type TypoPattern struct {
	Name     string
	Patterns []string
}
