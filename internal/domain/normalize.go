// Package domain — character-name identity normalization.
//
// Character names are free text asserted by the caller, so the same person may
// type "Mira", "mira " or "MIRA" from different machines. All identity
// comparisons (post authorship, interest membership, removal authorization)
// therefore run on a folded, trimmed form of the name rather than the raw
// input. The raw spelling is preserved for display.
package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// nameFolder performs Unicode case folding, which handles characters plain
// ASCII lowercasing would miss (e.g. "ẞ" vs "ß").
var nameFolder = cases.Fold()

// NormalizeName returns the canonical identity key for a character name:
// surrounding whitespace stripped, then case-folded. An all-whitespace name
// normalizes to the empty string.
func NormalizeName(s string) string {
	return nameFolder.String(strings.TrimSpace(s))
}

// SameName reports whether two character names refer to the same identity
// under NormalizeName.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
