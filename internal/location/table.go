package location

import (
	"strings"

	"tourbot/internal/vntext"
)

// minAliasLen excludes very short aliases from substring matching; below
// three normalized characters they hit far too many unrelated queries.
const minAliasLen = 3

type tableEntry struct {
	loc     *Location
	aliases []string // normalized, length >= minAliasLen
}

// Table is the canonical location directory: an ordered, immutable sequence
// of places with precomputed normalized aliases. Read-only after NewTable,
// safe for concurrent use.
type Table struct {
	entries []tableEntry
}

// NewTable builds a Table over the given locations, preserving their order.
func NewTable(locations []Location) *Table {
	t := &Table{entries: make([]tableEntry, 0, len(locations))}
	for i := range locations {
		loc := &locations[i]
		candidates := append([]string{loc.Name}, loc.Aliases...)
		entry := tableEntry{loc: loc}
		for _, alias := range candidates {
			norm := vntext.Normalize(alias)
			if len(norm) < minAliasLen {
				continue
			}
			entry.aliases = append(entry.aliases, norm)
		}
		t.entries = append(t.entries, entry)
	}
	return t
}

// DefaultTable returns a Table over the curated canonical location list.
func DefaultTable() *Table {
	return NewTable(CanonicalLocations)
}

// BestAliasMatch scans every alias of every entry for substring containment
// in the normalized query and returns the entry whose matching alias is
// longest. Longer aliases are more specific ("thanh pho can tho" must beat
// any stray three-letter fragment); ties keep the earlier entry. Returns nil
// when nothing matches.
func (t *Table) BestAliasMatch(normalizedQuery string) *Location {
	if normalizedQuery == "" {
		return nil
	}

	var best *Location
	bestLen := 0
	for _, entry := range t.entries {
		for _, alias := range entry.aliases {
			if len(alias) > bestLen && strings.Contains(normalizedQuery, alias) {
				bestLen = len(alias)
				best = entry.loc
			}
		}
	}
	return best
}
