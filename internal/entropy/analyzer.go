// Package entropy measures how much of the available bit space a corpus
// of syllable encodings actually uses, per component and jointly.
package entropy

import (
	"math"
	"sort"
	"strings"

	"github.com/example/go-phonosim/internal/syllable"
)

// Metrics holds Shannon entropy and bit-utilization statistics for a
// corpus of syllable encodings.
type Metrics struct {
	TotalWords     int64 `json:"total_words"`
	UniquePatterns int   `json:"unique_patterns"`

	OnsetEntropy   float64 `json:"onset_entropy"`
	NucleusEntropy float64 `json:"nucleus_entropy"`
	CodaEntropy    float64 `json:"coda_entropy"`
	JointEntropy   float64 `json:"joint_entropy"`

	OnsetUtilization   float64 `json:"onset_utilization"`
	NucleusUtilization float64 `json:"nucleus_utilization"`
	CodaUtilization    float64 `json:"coda_utilization"`

	UniqueOnsetPatterns   int `json:"unique_onset_patterns"`
	UniqueNucleusPatterns int `json:"unique_nucleus_patterns"`
	UniqueCodaPatterns    int `json:"unique_coda_patterns"`
}

// PatternCount pairs a bit pattern with its observed frequency.
type PatternCount struct {
	Pattern string `json:"pattern"`
	Count   int64  `json:"count"`
}

// Analyzer accumulates pattern frequencies across words. It is not safe
// for concurrent use: callers need a single writer, and reads of
// Metrics must be serialized with AddWord.
type Analyzer struct {
	onsetBits   uint
	nucleusBits uint
	codaBits    uint

	onset   map[string]int64
	nucleus map[string]int64
	coda    map[string]int64
	joint   map[string]int64
}

// NewAnalyzer returns an analyzer for encodings with the given
// consonant and vowel widths.
func NewAnalyzer(consWidth, vowWidth uint) *Analyzer {
	return &Analyzer{
		onsetBits:   consWidth,
		nucleusBits: vowWidth,
		codaBits:    consWidth,
		onset:       make(map[string]int64),
		nucleus:     make(map[string]int64),
		coda:        make(map[string]int64),
		joint:       make(map[string]int64),
	}
}

// AddWord counts each syllable's onset, nucleus, and coda pattern plus
// the whole-word joint pattern, weighted by frequency. Absent onsets and
// codas count as all-zero vectors.
func (a *Analyzer) AddWord(sylls []syllable.Syllable, frequency int64) {
	parts := make([]string, 0, len(sylls))
	for _, syl := range sylls {
		onset := syl.OnsetBits(a.onsetBits).String()
		nucleus := syl.Nucleus.String()
		coda := syl.CodaBits(a.codaBits).String()

		a.onset[onset] += frequency
		a.nucleus[nucleus] += frequency
		a.coda[coda] += frequency
		parts = append(parts, onset+"|"+nucleus+"|"+coda)
	}
	a.joint[strings.Join(parts, "+")] += frequency
}

// Metrics computes entropy and utilization over the accumulated counts.
// Entropy over an empty counter is 0.0, never NaN.
func (a *Analyzer) Metrics() Metrics {
	var totalWords int64
	for _, c := range a.joint {
		totalWords += c
	}

	return Metrics{
		TotalWords:     totalWords,
		UniquePatterns: len(a.joint),

		OnsetEntropy:   shannon(a.onset),
		NucleusEntropy: shannon(a.nucleus),
		CodaEntropy:    shannon(a.coda),
		JointEntropy:   shannon(a.joint),

		OnsetUtilization:   utilization(len(a.onset), a.onsetBits),
		NucleusUtilization: utilization(len(a.nucleus), a.nucleusBits),
		CodaUtilization:    utilization(len(a.coda), a.codaBits),

		UniqueOnsetPatterns:   len(a.onset),
		UniqueNucleusPatterns: len(a.nucleus),
		UniqueCodaPatterns:    len(a.coda),
	}
}

// TopPatterns returns the n most frequent patterns per component, keyed
// by "onset", "nucleus", "coda", and "joint". Ties break on pattern.
func (a *Analyzer) TopPatterns(n int) map[string][]PatternCount {
	return map[string][]PatternCount{
		"onset":   topN(a.onset, n),
		"nucleus": topN(a.nucleus, n),
		"coda":    topN(a.coda, n),
		"joint":   topN(a.joint, n),
	}
}

func shannon(counts map[string]int64) float64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0.0
	}

	var h float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

func utilization(unique int, bits uint) float64 {
	max := math.Pow(2, float64(bits))
	if max <= 0 {
		return 0.0
	}
	return float64(unique) / max
}

func topN(counts map[string]int64, n int) []PatternCount {
	out := make([]PatternCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, PatternCount{Pattern: p, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Pattern < out[j].Pattern
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
