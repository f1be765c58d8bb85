// Package vntext folds Vietnamese free text into comparable ASCII-lowercase
// search keys. All matching in the retrieval engine happens over these keys,
// never over the raw user input.
package vntext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize decomposes accented characters, drops the combining marks, maps
// the stroked đ/Đ to plain d/D and lowercases the result. It is total and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// The transformer chain carries state, so build a fresh one per call
	// rather than sharing a package-level instance across goroutines.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(strip, s)
	if err != nil {
		out = s
	}

	// đ does not decompose under NFD; it needs an explicit mapping.
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")

	return strings.ToLower(out)
}

// StripNonAlnum removes everything outside [a-z0-9] from an already
// normalized string. Used when matching place names against free-form
// corpus data where spacing and punctuation are unreliable.
func StripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
