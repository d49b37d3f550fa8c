// Package g2p predicts pronunciations for out-of-dictionary words. The
// core treats every generator as just another source of IPA strings.
package g2p

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/go-phonosim/internal/dict"
)

// ErrNotFound is returned when no pronunciation can be produced for a
// word.
var ErrNotFound = errors.New("no pronunciation found")

// Pronunciation is one candidate IPA transcription with a confidence
// score in [0, 1].
type Pronunciation struct {
	IPA        string  `json:"ipa"`
	Confidence float64 `json:"confidence"`
}

// Generator predicts pronunciations for a word.
type Generator interface {
	Generate(ctx context.Context, word string) ([]Pronunciation, error)
}

// SourceGenerator answers from a pronunciation dictionary first and
// falls back to a secondary generator for out-of-dictionary words.
type SourceGenerator struct {
	src      dict.Source
	fallback Generator
}

// NewSourceGenerator wraps a dictionary source. fallback may be nil, in
// which case out-of-dictionary words fail with ErrNotFound.
func NewSourceGenerator(src dict.Source, fallback Generator) *SourceGenerator {
	return &SourceGenerator{src: src, fallback: fallback}
}

func (g *SourceGenerator) Generate(ctx context.Context, word string) ([]Pronunciation, error) {
	if prons, ok := g.src.Lookup(strings.ToLower(word)); ok {
		out := make([]Pronunciation, 0, len(prons))
		for _, p := range prons {
			out = append(out, Pronunciation{IPA: p, Confidence: 1.0})
		}
		return out, nil
	}
	if g.fallback == nil {
		return nil, fmt.Errorf("word %q: %w", word, ErrNotFound)
	}
	return g.fallback.Generate(ctx, word)
}
