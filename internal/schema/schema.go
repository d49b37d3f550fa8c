// Package schema defines per-language phoneme feature schemas: which
// symbols are vowels, which articulatory features each phoneme carries,
// and the ordered feature columns that fix bit positions in encodings.
package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"unicode/utf8"
)

// FeatureType selects one of the two column sets of a schema.
type FeatureType string

const (
	Consonant FeatureType = "consonant"
	Vowel     FeatureType = "vowel"
)

// Features maps feature names to values. A value is either a bool for a
// binary feature ("voiced") or a string for a categorical one ("place",
// "manner").
type Features map[string]any

// Definition is the raw material for a Schema. Phonemes not listed in
// Vowels are consonants.
type Definition struct {
	Name     string
	Vowels   []string
	Phonemes map[string]Features
	Columns  map[FeatureType][]string
}

// Schema is an immutable phoneme inventory with its feature columns.
// Safe for concurrent use after construction.
type Schema struct {
	name          string
	vowels        map[string]struct{}
	features      map[string]Features
	columns       map[FeatureType][]string
	maxPhonemeLen int
	version       string
}

// New validates a definition and builds a schema. Column lists are
// deduplicated and sorted lexicographically; the sorted order defines
// bit positions and is stable across runs.
func New(def Definition) (*Schema, error) {
	if len(def.Phonemes) == 0 {
		return nil, errors.New("schema has no phonemes")
	}
	if len(def.Columns[Consonant]) == 0 || len(def.Columns[Vowel]) == 0 {
		return nil, errors.New("schema needs both consonant and vowel columns")
	}

	s := &Schema{
		name:     def.Name,
		vowels:   make(map[string]struct{}, len(def.Vowels)),
		features: make(map[string]Features, len(def.Phonemes)),
		columns:  make(map[FeatureType][]string, 2),
	}

	for _, v := range def.Vowels {
		if _, ok := def.Phonemes[v]; !ok {
			return nil, fmt.Errorf("vowel %q has no feature entry", v)
		}
		s.vowels[v] = struct{}{}
	}

	for p, f := range def.Phonemes {
		if p == "" {
			return nil, errors.New("schema contains an empty phoneme")
		}
		s.features[p] = f
		if n := utf8.RuneCountInString(p); n > s.maxPhonemeLen {
			s.maxPhonemeLen = n
		}
	}

	for t, cols := range def.Columns {
		s.columns[t] = sortedUnique(cols)
	}

	s.version = s.computeVersion()
	return s, nil
}

// Merge unions several schemas into one: vowel sets, phoneme features,
// and columns are combined. When the same phoneme appears in more than
// one schema with different features, the last schema wins and the
// collision is logged.
func Merge(name string, schemas ...*Schema) (*Schema, error) {
	if len(schemas) == 0 {
		return nil, errors.New("merge needs at least one schema")
	}

	def := Definition{
		Name:     name,
		Phonemes: make(map[string]Features),
		Columns:  map[FeatureType][]string{Consonant: nil, Vowel: nil},
	}
	vowels := make(map[string]struct{})

	for _, s := range schemas {
		for p, f := range s.features {
			if prev, ok := def.Phonemes[p]; ok && !equalFeatures(prev, f) {
				slog.Debug("schema merge overwrote phoneme features",
					slog.String("phoneme", p),
					slog.String("schema", s.name),
				)
			}
			def.Phonemes[p] = f
		}
		for v := range s.vowels {
			vowels[v] = struct{}{}
		}
		for t, cols := range s.columns {
			def.Columns[t] = append(def.Columns[t], cols...)
		}
	}

	for v := range vowels {
		def.Vowels = append(def.Vowels, v)
	}

	return New(def)
}

// Name returns the schema's display name.
func (s *Schema) Name() string { return s.name }

// HasPhoneme reports whether p is part of the inventory.
func (s *Schema) HasPhoneme(p string) bool {
	_, ok := s.features[p]
	return ok
}

// IsVowel reports whether p belongs to the vowel set.
func (s *Schema) IsVowel(p string) bool {
	_, ok := s.vowels[p]
	return ok
}

// TypeOf returns the feature type of a phoneme.
func (s *Schema) TypeOf(p string) FeatureType {
	if s.IsVowel(p) {
		return Vowel
	}
	return Consonant
}

// Features returns the feature map of a phoneme. The returned map is
// shared and must not be modified.
func (s *Schema) Features(p string) (Features, bool) {
	f, ok := s.features[p]
	return f, ok
}

// Columns returns the ordered column list for a feature type. The
// returned slice is shared and must not be modified.
func (s *Schema) Columns(t FeatureType) []string { return s.columns[t] }

// Width returns the bit width of encodings for a feature type.
func (s *Schema) Width(t FeatureType) uint { return uint(len(s.columns[t])) }

// MaxPhonemeLen returns the length in runes of the longest phoneme.
func (s *Schema) MaxPhonemeLen() int { return s.maxPhonemeLen }

// Phonemes returns the inventory in sorted order.
func (s *Schema) Phonemes() []string {
	out := make([]string, 0, len(s.features))
	for p := range s.features {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Version returns a short digest of the inventory, feature maps, and
// columns. Collaborators use it as a cache-invalidation key: any change
// to the schema yields a different version.
func (s *Schema) Version() string { return s.version }

func (s *Schema) computeVersion() string {
	h := sha256.New()
	for _, p := range s.Phonemes() {
		_, _ = io.WriteString(h, p)
		_, _ = io.WriteString(h, ":"+string(s.TypeOf(p))+"{")
		f := s.features[p]
		keys := make([]string, 0, len(f))
		for k := range f {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(h, "%s=%v;", k, f[k])
		}
		_, _ = io.WriteString(h, "}")
	}
	for _, t := range []FeatureType{Consonant, Vowel} {
		for _, c := range s.columns[t] {
			_, _ = io.WriteString(h, string(t)+":"+c+";")
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}

func sortedUnique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func equalFeatures(a, b Features) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || av != bv {
			return false
		}
	}
	return true
}
