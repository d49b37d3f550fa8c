// Package phoneme segments IPA strings into schema phonemes and encodes
// their feature sets as fixed-width bit vectors.
package phoneme

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/example/go-phonosim/internal/schema"
)

// Policy decides how the tokenizer treats input it cannot match.
type Policy int

const (
	// FailFast aborts tokenization with an UnknownPhonemeError.
	FailFast Policy = iota
	// SkipUnknown drops the offending rune, logs a warning, and
	// continues with the rest of the string.
	SkipUnknown
)

// ParsePolicy converts a config string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "fail":
		return FailFast, nil
	case "skip":
		return SkipUnknown, nil
	default:
		return FailFast, fmt.Errorf("unknown tokenizer policy %q (want fail|skip)", s)
	}
}

// Tokenizer splits IPA strings into known phoneme units by greedy
// longest-match segmentation. It commits to the longest match at each
// position and never backtracks, so ambiguous strings may tokenize
// differently from a globally optimal segmentation.
type Tokenizer struct {
	schema *schema.Schema
	policy Policy
	log    *slog.Logger
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithPolicy sets the unknown-input policy. The default is FailFast.
func WithPolicy(p Policy) TokenizerOption {
	return func(t *Tokenizer) { t.policy = p }
}

// WithTokenizerLogger sets the logger used for skip diagnostics.
func WithTokenizerLogger(l *slog.Logger) TokenizerOption {
	return func(t *Tokenizer) { t.log = l }
}

func NewTokenizer(s *schema.Schema, opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{
		schema: s,
		policy: FailFast,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize segments ipa into phoneme tokens. At each position the
// longest phoneme in the schema starting there wins, so "tʃ" is one
// token even though "t" and "ʃ" are also phonemes. Joining the returned
// tokens reproduces the matched portion of the input.
func (t *Tokenizer) Tokenize(ipa string) ([]string, error) {
	runes := []rune(ipa)
	tokens := make([]string, 0, len(runes))

	for pos := 0; pos < len(runes); {
		match := t.longestMatch(runes[pos:])
		if match == "" {
			fragment := string(runes[pos])
			if t.policy == FailFast {
				return nil, &UnknownPhonemeError{Input: ipa, Offset: pos, Fragment: fragment}
			}
			t.log.Warn("skipping unknown phoneme",
				slog.String("fragment", fragment),
				slog.Int("offset", pos),
				slog.String("ipa", ipa),
			)
			pos++
			continue
		}
		tokens = append(tokens, match)
		pos += utf8.RuneCountInString(match)
	}

	return tokens, nil
}

func (t *Tokenizer) longestMatch(rest []rune) string {
	max := t.schema.MaxPhonemeLen()
	if max > len(rest) {
		max = len(rest)
	}
	for l := max; l >= 1; l-- {
		if cand := string(rest[:l]); t.schema.HasPhoneme(cand) {
			return cand
		}
	}
	return ""
}
