// Package phonosim composes the schema, tokenizer, encoder, and
// syllabifier into a single service for callers.
package phonosim

import (
	"log/slog"

	"github.com/example/go-phonosim/internal/bitvec"
	"github.com/example/go-phonosim/internal/config"
	"github.com/example/go-phonosim/internal/ipa"
	"github.com/example/go-phonosim/internal/phoneme"
	"github.com/example/go-phonosim/internal/schema"
	"github.com/example/go-phonosim/internal/syllable"
)

// DefaultMaxSyllables is the number of syllables kept per word encoding
// when the caller does not override it.
const DefaultMaxSyllables = 6

// Service converts IPA transcriptions into syllable sequences and
// fixed-width word encodings against one schema. Safe for concurrent
// use.
type Service struct {
	schema       *schema.Schema
	tok          *phoneme.Tokenizer
	enc          *phoneme.Encoder
	splitter     *syllable.Splitter
	maxSyllables int
}

// Option configures a Service.
type Option func(*settings)

type settings struct {
	maxSyllables int
	policy       phoneme.Policy
	logger       *slog.Logger
}

// WithMaxSyllables sets the default syllable budget for word encodings.
func WithMaxSyllables(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxSyllables = n
		}
	}
}

// WithTokenizerPolicy sets the unknown-phoneme policy.
func WithTokenizerPolicy(p phoneme.Policy) Option {
	return func(s *settings) { s.policy = p }
}

// WithLogger sets the logger shared by the tokenizer and syllabifier.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// New builds a service over the given schema.
func New(sch *schema.Schema, opts ...Option) *Service {
	st := settings{
		maxSyllables: DefaultMaxSyllables,
		policy:       phoneme.FailFast,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&st)
	}

	tok := phoneme.NewTokenizer(sch,
		phoneme.WithPolicy(st.policy),
		phoneme.WithTokenizerLogger(st.logger),
	)
	enc := phoneme.NewEncoder(sch)

	return &Service{
		schema:       sch,
		tok:          tok,
		enc:          enc,
		splitter:     syllable.NewSplitter(sch, tok, enc, syllable.WithLogger(st.logger)),
		maxSyllables: st.maxSyllables,
	}
}

// FromConfig builds a service for the configured language and analysis
// settings.
func FromConfig(cfg config.Config) (*Service, error) {
	sch, err := schema.ForLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}
	policy, err := phoneme.ParsePolicy(cfg.Analysis.UnknownPolicy)
	if err != nil {
		return nil, err
	}
	return New(sch,
		WithMaxSyllables(cfg.Analysis.MaxSyllables),
		WithTokenizerPolicy(policy),
	), nil
}

// Schema returns the schema the service was built with.
func (s *Service) Schema() *schema.Schema { return s.schema }

// MaxSyllables returns the default syllable budget.
func (s *Service) MaxSyllables() int { return s.maxSyllables }

// SyllableBits returns the width of one fully populated syllable.
func (s *Service) SyllableBits() uint {
	return syllable.Bits(s.schema.Width(schema.Consonant), s.schema.Width(schema.Vowel))
}

// Tokenize cleans a raw transcription and segments it into phonemes.
func (s *Service) Tokenize(raw string) ([]string, error) {
	cleaned, err := ipa.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return s.tok.Tokenize(cleaned)
}

// Syllabify cleans a raw transcription and partitions it into
// syllables.
func (s *Service) Syllabify(raw string) ([]syllable.Syllable, error) {
	cleaned, err := ipa.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return s.splitter.Split(cleaned)
}

// EncodeWord produces the fixed-width word encoding for a
// transcription. A maxSyllables of zero or less uses the service
// default.
func (s *Service) EncodeWord(raw string, maxSyllables int) (bitvec.Vector, error) {
	if maxSyllables <= 0 {
		maxSyllables = s.maxSyllables
	}
	sylls, err := s.Syllabify(raw)
	if err != nil {
		return bitvec.Vector{}, err
	}
	return syllable.WordEncoding(sylls, maxSyllables,
		s.schema.Width(schema.Consonant), s.schema.Width(schema.Vowel))
}

// Fold XOR-reduces a word encoding to a single syllable width.
func (s *Service) Fold(enc bitvec.Vector) bitvec.Vector {
	return syllable.Fold(enc, s.SyllableBits())
}
