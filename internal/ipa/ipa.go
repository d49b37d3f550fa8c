// Package ipa prepares raw IPA transcriptions for tokenization.
package ipa

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned when a transcription is empty after cleaning.
var ErrEmpty = errors.New("ipa transcription is empty")

// Marks dictionary sources attach that the phoneme inventories do not
// model: primary/secondary stress, syllable and word boundaries.
var strippedMarks = map[rune]struct{}{
	'ˈ': {},
	'ˌ': {},
	'.': {},
	'‿': {},
	'|': {},
	'‖': {},
}

// Clean prepares a raw IPA transcription: trims whitespace and
// enclosing slashes or brackets, applies NFC normalization, and drops
// stress and boundary marks along with interior whitespace.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/[]")
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := strippedMarks[r]; ok {
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize cleans s and rejects empty results.
func Normalize(s string) (string, error) {
	out := Clean(s)
	if out == "" {
		return "", ErrEmpty
	}
	return out, nil
}

// SplitPronunciations splits a dictionary entry holding comma-separated
// alternative pronunciations, cleaning each and dropping empties.
func SplitPronunciations(entry string) []string {
	parts := strings.Split(entry, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if cleaned := Clean(p); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
