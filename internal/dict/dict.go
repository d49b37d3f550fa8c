// Package dict supplies IPA pronunciations for words, backed by the
// CharsiuG2P TSV dictionaries.
package dict

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/example/go-phonosim/internal/ipa"
)

// Source supplies IPA pronunciations for a word. Transcriptions loaded
// through Parse are already cleaned; other implementations may return
// raw transcriptions, which callers normalize before tokenization.
type Source interface {
	Lookup(word string) ([]string, bool)
}

// Dictionary is an in-memory word to pronunciations table.
type Dictionary struct {
	lang    string
	entries map[string][]string
	words   []string
}

// New builds a dictionary from an entry map. Words are lowercased.
func New(lang string, entries map[string][]string) *Dictionary {
	d := &Dictionary{
		lang:    lang,
		entries: make(map[string][]string, len(entries)),
	}
	for w, prons := range entries {
		d.entries[strings.ToLower(w)] = prons
	}
	d.words = make([]string, 0, len(d.entries))
	for w := range d.entries {
		d.words = append(d.words, w)
	}
	sort.Strings(d.words)
	return d
}

// Parse reads a two-column TSV of word and comma-separated
// pronunciations. Rows with fewer than two columns are skipped, and
// each pronunciation is cleaned of stress and boundary marks.
func Parse(lang string, r io.Reader) (*Dictionary, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	entries := make(map[string][]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse dictionary tsv: %w", err)
		}
		if len(row) < 2 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(row[0]))
		if word == "" {
			continue
		}
		prons := ipa.SplitPronunciations(row[1])
		if len(prons) == 0 {
			continue
		}
		entries[word] = prons
	}
	return New(lang, entries), nil
}

// Language returns the dictionary's language code.
func (d *Dictionary) Language() string { return d.lang }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Lookup returns the pronunciations recorded for a word.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	prons, ok := d.entries[strings.ToLower(word)]
	return prons, ok
}

// Words returns all words in sorted order. The returned slice is shared
// and must not be modified.
func (d *Dictionary) Words() []string { return d.words }
