// Package distance finds phonetically similar words by Hamming
// distance over folded bit encodings.
package distance

import (
	"fmt"
	"sort"

	"github.com/example/go-phonosim/internal/bitvec"
	"github.com/example/go-phonosim/internal/dict"
	"github.com/example/go-phonosim/internal/phonosim"
)

// Match is a word within the requested distance of a query.
type Match struct {
	Word     string `json:"word"`
	IPA      string `json:"ipa"`
	Distance uint   `json:"distance"`
}

type entry struct {
	word   string
	ipa    string
	folded bitvec.Vector
}

// Index holds folded word encodings for nearest-neighbour lookups.
type Index struct {
	svc     *phonosim.Service
	entries []entry
}

func NewIndex(svc *phonosim.Service) *Index {
	return &Index{svc: svc}
}

func (ix *Index) Len() int { return len(ix.entries) }

// Add encodes one pronunciation and stores its folded vector.
func (ix *Index) Add(word, pron string) error {
	enc, err := ix.svc.EncodeWord(pron, 0)
	if err != nil {
		return fmt.Errorf("encode %q: %w", word, err)
	}
	ix.entries = append(ix.entries, entry{
		word:   word,
		ipa:    pron,
		folded: ix.svc.Fold(enc),
	})
	return nil
}

// AddDictionary indexes every pronunciation in the dictionary and
// returns the number of entries skipped for encoding errors.
func (ix *Index) AddDictionary(d *dict.Dictionary) int {
	skipped := 0
	for _, word := range d.Words() {
		prons, _ := d.Lookup(word)
		for _, pron := range prons {
			if err := ix.Add(word, pron); err != nil {
				skipped++
			}
		}
	}
	return skipped
}

// Nearest returns indexed words within maxDist Hamming distance of the
// query pronunciation, closest first. Ties break alphabetically.
func (ix *Index) Nearest(pron string, maxDist uint) ([]Match, error) {
	enc, err := ix.svc.EncodeWord(pron, 0)
	if err != nil {
		return nil, err
	}
	query := ix.svc.Fold(enc)

	var matches []Match
	for _, e := range ix.entries {
		d := query.Xor(e.folded).Count()
		if d <= maxDist {
			matches = append(matches, Match{Word: e.word, IPA: e.ipa, Distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Word < matches[j].Word
	})
	return matches, nil
}
