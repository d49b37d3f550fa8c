package schema

import (
	"sort"
	"testing"
)

func mustEnglishGB(t *testing.T) *Schema {
	t.Helper()
	s, err := EnglishGB()
	if err != nil {
		t.Fatalf("EnglishGB() error: %v", err)
	}
	return s
}

func TestEnglishGB_Widths(t *testing.T) {
	s := mustEnglishGB(t)

	if got := s.Width(Consonant); got != 14 {
		t.Errorf("consonant width = %d, want 14", got)
	}
	if got := s.Width(Vowel); got != 10 {
		t.Errorf("vowel width = %d, want 10", got)
	}
}

func TestColumnsAreSorted(t *testing.T) {
	s := mustEnglishGB(t)

	for _, ft := range []FeatureType{Consonant, Vowel} {
		cols := s.Columns(ft)
		if !sort.StringsAreSorted(cols) {
			t.Errorf("%s columns not sorted: %v", ft, cols)
		}
	}
}

func TestColumnOrder_FixesBitPositions(t *testing.T) {
	s := mustEnglishGB(t)

	want := []string{
		"affricate", "alveolar", "approximant", "dental", "fricative",
		"glottal", "labial", "lateral_approximant", "nasal", "palatal",
		"plosive", "post-alveolar", "velar", "voiced",
	}
	got := s.Columns(Consonant)
	if len(got) != len(want) {
		t.Fatalf("consonant columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("consonant column %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsVowel(t *testing.T) {
	s := mustEnglishGB(t)

	cases := []struct {
		phoneme string
		want    bool
	}{
		{"æ", true},
		{"aɪ", true},
		{"ɑː", true},
		{"k", false},
		{"tʃ", false},
		{"x", false}, // not in the inventory at all
	}
	for _, tc := range cases {
		if got := s.IsVowel(tc.phoneme); got != tc.want {
			t.Errorf("IsVowel(%q) = %v, want %v", tc.phoneme, got, tc.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	s := mustEnglishGB(t)

	if got := s.TypeOf("k"); got != Consonant {
		t.Errorf("TypeOf(k) = %v, want %v", got, Consonant)
	}
	if got := s.TypeOf("æ"); got != Vowel {
		t.Errorf("TypeOf(æ) = %v, want %v", got, Vowel)
	}
}

func TestMaxPhonemeLen_CoversMultiRuneUnits(t *testing.T) {
	s := mustEnglishGB(t)

	// "tʃ" and "aɪ" are two runes each.
	if got := s.MaxPhonemeLen(); got < 2 {
		t.Errorf("MaxPhonemeLen() = %d, want >= 2", got)
	}
}

func TestVersion_StablePerSchema(t *testing.T) {
	a := mustEnglishGB(t)
	b := mustEnglishGB(t)

	if a.Version() == "" {
		t.Fatal("Version() is empty")
	}
	if a.Version() != b.Version() {
		t.Errorf("same definition produced versions %q and %q", a.Version(), b.Version())
	}

	de, err := German()
	if err != nil {
		t.Fatalf("German() error: %v", err)
	}
	if a.Version() == de.Version() {
		t.Error("different languages share a schema version")
	}
}

func TestForLanguage(t *testing.T) {
	for _, code := range []string{"en-gb", "de", "es", "da", "combined"} {
		t.Run(code, func(t *testing.T) {
			s, err := ForLanguage(code)
			if err != nil {
				t.Fatalf("ForLanguage(%q) error: %v", code, err)
			}
			if s.Width(Consonant) == 0 || s.Width(Vowel) == 0 {
				t.Errorf("schema %q has empty columns", code)
			}
		})
	}
}

func TestRegister_RoundTrip(t *testing.T) {
	testDef := func(name string) Definition {
		return Definition{
			Name:   name,
			Vowels: []string{"a"},
			Phonemes: map[string]Features{
				"p": {"labial": true, "plosive": true},
				"a": {"low": true, "front": true},
			},
			Columns: map[FeatureType][]string{
				Consonant: {"labial", "plosive"},
				Vowel:     {"low", "front"},
			},
		}
	}
	Register("zz-test", func() (*Schema, error) { return New(testDef("zz-test")) })

	s, err := ForLanguage("zz-test")
	if err != nil {
		t.Fatalf("ForLanguage(zz-test) error: %v", err)
	}
	if got := s.Name(); got != "zz-test" {
		t.Errorf("Name() = %q, want zz-test", got)
	}

	// Registering the same code again replaces the builder.
	Register("zz-test", func() (*Schema, error) { return New(testDef("zz-test-v2")) })
	s, err = ForLanguage("zz-test")
	if err != nil {
		t.Fatalf("ForLanguage(zz-test) after replace error: %v", err)
	}
	if got := s.Name(); got != "zz-test-v2" {
		t.Errorf("Name() after replace = %q, want zz-test-v2", got)
	}

	var found bool
	for _, code := range Languages() {
		if code == "zz-test" {
			found = true
		}
	}
	if !found {
		t.Error("Languages() missing registered code zz-test")
	}
}

func TestForLanguage_Unknown(t *testing.T) {
	if _, err := ForLanguage("tlh"); err == nil {
		t.Fatal("ForLanguage(\"tlh\") expected error, got nil")
	}
}

func TestCombined_UnionsInventories(t *testing.T) {
	combined, err := Combined()
	if err != nil {
		t.Fatalf("Combined() error: %v", err)
	}
	en := mustEnglishGB(t)
	de, err := German()
	if err != nil {
		t.Fatalf("German() error: %v", err)
	}

	for _, p := range en.Phonemes() {
		if !combined.HasPhoneme(p) {
			t.Errorf("combined schema missing en-gb phoneme %q", p)
		}
	}
	for _, p := range de.Phonemes() {
		if !combined.HasPhoneme(p) {
			t.Errorf("combined schema missing de phoneme %q", p)
		}
	}
	if combined.Width(Consonant) < en.Width(Consonant) {
		t.Error("combined consonant width narrower than en-gb")
	}
}

func TestMerge_LastWriterWinsOnCollision(t *testing.T) {
	a, err := New(Definition{
		Name:   "a",
		Vowels: []string{"a"},
		Phonemes: map[string]Features{
			"a": {"low": true},
			"t": {"voiced": false, "manner": "plosive"},
		},
		Columns: map[FeatureType][]string{
			Consonant: {"voiced", "plosive"},
			Vowel:     {"low"},
		},
	})
	if err != nil {
		t.Fatalf("New(a) error: %v", err)
	}
	b, err := New(Definition{
		Name:   "b",
		Vowels: []string{"a"},
		Phonemes: map[string]Features{
			"a": {"low": true},
			"t": {"voiced": true, "manner": "plosive"},
		},
		Columns: map[FeatureType][]string{
			Consonant: {"voiced", "plosive"},
			Vowel:     {"low"},
		},
	})
	if err != nil {
		t.Fatalf("New(b) error: %v", err)
	}

	merged, err := Merge("ab", a, b)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	feats, ok := merged.Features("t")
	if !ok {
		t.Fatal("merged schema missing phoneme t")
	}
	if voiced, _ := feats["voiced"].(bool); !voiced {
		t.Error("collision should resolve to the last schema's features")
	}
}

func TestNew_RejectsVowelWithoutFeatures(t *testing.T) {
	_, err := New(Definition{
		Name:   "broken",
		Vowels: []string{"a", "ghost"},
		Phonemes: map[string]Features{
			"a": {"low": true},
		},
		Columns: map[FeatureType][]string{
			Consonant: {"voiced"},
			Vowel:     {"low"},
		},
	})
	if err == nil {
		t.Fatal("expected error for vowel missing from phoneme map")
	}
}
