package phoneme

import (
	"testing"

	"github.com/example/go-phonosim/internal/schema"
)

// Golden vectors pin the bit layout of the lexicographically sorted
// en-gb columns. Consonants: affricate, alveolar, approximant, dental,
// fricative, glottal, labial, lateral_approximant, nasal, palatal,
// plosive, post-alveolar, velar, voiced. Vowels: back, central,
// diphthong, front, high, long, low, mid, round, tense.
func TestEncodePhoneme_Golden(t *testing.T) {
	enc := NewEncoder(englishGB(t))

	cases := []struct {
		phoneme string
		ftype   schema.FeatureType
		want    string
	}{
		{"k", schema.Consonant, "00000000001010"},
		{"t", schema.Consonant, "01000000001000"},
		{"s", schema.Consonant, "01001000000000"},
		{"r", schema.Consonant, "00100000000101"},
		{"b", schema.Consonant, "00000010001001"},
		{"n", schema.Consonant, "01000000100001"},
		{"ŋ", schema.Consonant, "00000000100011"},
		{"tʃ", schema.Consonant, "10000000000100"},
		{"æ", schema.Vowel, "0001001000"},
		{"ɒ", schema.Vowel, "1000001010"},
		{"ɪ", schema.Vowel, "0001100000"},
		{"ə", schema.Vowel, "0100000100"},
		{"aɪ", schema.Vowel, "1000111000"},
		{"uː", schema.Vowel, "1000110011"},
	}
	for _, tc := range cases {
		t.Run(tc.phoneme, func(t *testing.T) {
			got, err := enc.EncodePhoneme(tc.phoneme, tc.ftype)
			if err != nil {
				t.Fatalf("EncodePhoneme(%q) error: %v", tc.phoneme, err)
			}
			if got.String() != tc.want {
				t.Errorf("EncodePhoneme(%q) = %s, want %s", tc.phoneme, got.String(), tc.want)
			}
		})
	}
}

func TestEncodePhoneme_Deterministic(t *testing.T) {
	enc := NewEncoder(englishGB(t))

	first, err := enc.EncodePhoneme("k", schema.Consonant)
	if err != nil {
		t.Fatalf("EncodePhoneme error: %v", err)
	}
	// Second call hits the memo and must agree.
	second, err := enc.EncodePhoneme("k", schema.Consonant)
	if err != nil {
		t.Fatalf("EncodePhoneme error: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("memoized encoding %s differs from first %s", second.String(), first.String())
	}
}

func TestEncodePhoneme_Unknown(t *testing.T) {
	enc := NewEncoder(englishGB(t))

	if _, err := enc.EncodePhoneme("x", schema.Consonant); err == nil {
		t.Fatal("expected error for phoneme outside the inventory")
	}
}

func TestEncode_ColumnForms(t *testing.T) {
	features := schema.Features{
		"voiced": true,
		"place":  "alveolar",
		"start":  "a",
		"quiet":  false,
	}

	cases := []struct {
		name    string
		columns []string
		want    string
	}{
		{"attr=value match", []string{"place=alveolar"}, "1"},
		{"attr=value mismatch", []string{"place=velar"}, "0"},
		{"boolean true", []string{"voiced"}, "1"},
		{"boolean false", []string{"quiet"}, "0"},
		{"categorical value as column", []string{"alveolar"}, "1"},
		{"truthy categorical attribute", []string{"start"}, "1"},
		{"absent column", []string{"nasal"}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode(features, tc.columns).String(); got != tc.want {
				t.Errorf("Encode(%v) = %s, want %s", tc.columns, got, tc.want)
			}
		})
	}
}
