package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases a string and strips diacritical marks
// (e.g. "Αθήνα" -> "αθηνα"), for case- and accent-insensitive comparisons.
func Fold(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		// invalid UTF-8 sequences pass through lowercased
		return strings.ToLower(s)
	}
	return folded
}

// Normalize folds a free-text field and splits it into matching tokens.
// Periods, commas and hyphens act as separators; empty fragments are dropped.
func Normalize(s string) []string {
	if s == "" {
		return []string{}
	}

	folded := Fold(s)

	replacer := strings.NewReplacer(".", " ", ",", " ", "-", " ")
	folded = replacer.Replace(folded)

	return strings.Fields(folded)
}
