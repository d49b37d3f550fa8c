package syllable

import (
	"log/slog"
	"strings"

	"github.com/example/go-phonosim/internal/bitvec"
	"github.com/example/go-phonosim/internal/phoneme"
	"github.com/example/go-phonosim/internal/schema"
)

// Splitter partitions token streams into syllables. Consonant clusters
// are lumped into a single bit pattern per component: each phoneme
// contributes its encoding by bitwise union, so the order of phonemes
// inside a cluster is not preserved.
type Splitter struct {
	schema *schema.Schema
	tok    *phoneme.Tokenizer
	enc    *phoneme.Encoder
	log    *slog.Logger

	consWidth uint
	vowWidth  uint
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(l *slog.Logger) SplitterOption {
	return func(s *Splitter) { s.log = l }
}

func NewSplitter(sch *schema.Schema, tok *phoneme.Tokenizer, enc *phoneme.Encoder, opts ...SplitterOption) *Splitter {
	s := &Splitter{
		schema:    sch,
		tok:       tok,
		enc:       enc,
		log:       slog.Default(),
		consWidth: sch.Width(schema.Consonant),
		vowWidth:  sch.Width(schema.Vowel),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConsonantWidth returns the bit width of onset and coda vectors.
func (s *Splitter) ConsonantWidth() uint { return s.consWidth }

// VowelWidth returns the bit width of nucleus vectors.
func (s *Splitter) VowelWidth() uint { return s.vowWidth }

// Split tokenizes ipa and partitions the tokens into syllables, one per
// vowel run. Consonant clusters between two nuclei attach wholesale to
// the onset of the following syllable: when a new onset is gathered and
// the previous syllable still holds a coda, the coda is folded into the
// onset and removed. Trailing consonants with no following vowel merge
// into the previous syllable's coda. Empty input yields an empty slice.
func (s *Splitter) Split(ipa string) ([]Syllable, error) {
	tokens, err := s.tok.Tokenize(ipa)
	if err != nil {
		return nil, err
	}
	return s.SplitTokens(tokens)
}

// SplitTokens runs the syllabifier over an already tokenized sequence.
func (s *Splitter) SplitTokens(tokens []string) ([]Syllable, error) {
	n := len(tokens)
	i := 0
	var results []Syllable

	for i < n {
		// Gather the onset: consecutive non-vowel tokens.
		onset := bitvec.New(s.consWidth)
		for i < n && !s.schema.IsVowel(tokens[i]) {
			v, err := s.enc.EncodePhoneme(tokens[i], schema.Consonant)
			if err != nil {
				return nil, err
			}
			onset = onset.Or(v)
			i++
		}

		// Input exhausted with a pending onset: the trailing cluster
		// belongs to the previous syllable's coda.
		if i == n {
			if len(results) == 0 {
				if !onset.IsZero() {
					s.log.Warn("input contains no vowel, dropping consonant cluster",
						slog.String("ipa", ipaForLog(tokens)),
					)
				}
				break
			}
			if !onset.IsZero() {
				last := &results[len(results)-1]
				merged := last.CodaBits(s.consWidth).Or(onset)
				last.Coda = &merged
			}
			break
		}

		// Boundary merge: a coda left on the previous syllable moves
		// into this syllable's onset.
		if len(results) > 0 && results[len(results)-1].Coda != nil {
			onset = results[len(results)-1].Coda.Or(onset)
			if s.schema.IsVowel(tokens[i]) {
				results[len(results)-1].Coda = nil
			}
		}

		// The onset loop above only stops on a vowel or at the end of
		// input, so this can only fire if the tokenizer and the
		// schema's vowel set disagree about a token.
		if !s.schema.IsVowel(tokens[i]) {
			return nil, &InvariantViolationError{Token: tokens[i], Position: i}
		}

		// Gather the nucleus: consecutive vowel tokens.
		nucleus := bitvec.New(s.vowWidth)
		vowelStart := i
		for i < n && s.schema.IsVowel(tokens[i]) {
			if i != vowelStart {
				s.log.Warn("multiple vowels in one nucleus, merging",
					slog.String("tokens", strings.Join(tokens[vowelStart:i+1], " ")),
				)
			}
			v, err := s.enc.EncodePhoneme(tokens[i], schema.Vowel)
			if err != nil {
				return nil, err
			}
			nucleus = nucleus.Or(v)
			i++
		}

		// Gather the coda: consonants up to the next vowel or the end.
		coda := bitvec.New(s.consWidth)
		for i < n && !s.schema.IsVowel(tokens[i]) {
			v, err := s.enc.EncodePhoneme(tokens[i], schema.Consonant)
			if err != nil {
				return nil, err
			}
			coda = coda.Or(v)
			i++
		}

		syl := Syllable{Nucleus: nucleus}
		if !onset.IsZero() {
			o := onset
			syl.Onset = &o
		}
		if !coda.IsZero() {
			c := coda
			syl.Coda = &c
		}
		results = append(results, syl)
	}

	return results, nil
}

func ipaForLog(tokens []string) string {
	return strings.Join(tokens, "")
}
