// Package textmatch scores merchants against free-text search queries.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison: letters are lowercased,
// diacritics are stripped and surrounding whitespace is trimmed.
//
// Normalize is idempotent, so Normalize("Açaí") == Normalize("ACAI") == "acai".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// A transform.Chain is stateful, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}

	return strings.TrimSpace(stripped)
}

// Words splits already normalized text into whitespace-separated words.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}
