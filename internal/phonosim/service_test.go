package phonosim

import (
	"errors"
	"reflect"
	"testing"

	"github.com/example/go-phonosim/internal/config"
	"github.com/example/go-phonosim/internal/ipa"
	"github.com/example/go-phonosim/internal/schema"
)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	sch, err := schema.EnglishGB()
	if err != nil {
		t.Fatalf("EnglishGB() error: %v", err)
	}
	return New(sch, opts...)
}

func TestSyllableBits(t *testing.T) {
	svc := newTestService(t)
	if got := svc.SyllableBits(); got != 38 {
		t.Errorf("SyllableBits() = %d, want 38", got)
	}
}

func TestTokenize_StripsStressMarkers(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Tokenize("ˈɪnsaɪt")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []string{"ɪ", "n", "s", "aɪ", "t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_EmptyAfterCleaning(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Tokenize(" ˈ "); !errors.Is(err, ipa.ErrEmpty) {
		t.Fatalf("error = %v, want ipa.ErrEmpty", err)
	}
}

func TestEncodeWord_Width(t *testing.T) {
	svc := newTestService(t)

	enc, err := svc.EncodeWord("kæt", 0)
	if err != nil {
		t.Fatalf("EncodeWord error: %v", err)
	}
	if got := enc.Width(); got != uint(DefaultMaxSyllables)*38 {
		t.Errorf("Width() = %d, want %d", got, DefaultMaxSyllables*38)
	}

	enc, err = svc.EncodeWord("kæt", 2)
	if err != nil {
		t.Fatalf("EncodeWord error: %v", err)
	}
	if got := enc.Width(); got != 76 {
		t.Errorf("Width() = %d, want 76", got)
	}
}

func TestEncodeWord_SameSuffixSharesPrefixBits(t *testing.T) {
	svc := newTestService(t)

	// Reverse ordering pins word-final syllables to the same offsets.
	a, err := svc.EncodeWord("nænə", 4)
	if err != nil {
		t.Fatalf("EncodeWord error: %v", err)
	}
	b, err := svc.EncodeWord("bənænə", 4)
	if err != nil {
		t.Fatalf("EncodeWord error: %v", err)
	}
	if a.Slice(0, 48).String() != b.Slice(0, 48).String() {
		t.Error("shared final syllables should occupy identical leading bits")
	}
}

func TestFold_ReducesToSyllableWidth(t *testing.T) {
	svc := newTestService(t)

	enc, err := svc.EncodeWord("bənænə", 0)
	if err != nil {
		t.Fatalf("EncodeWord error: %v", err)
	}
	folded := svc.Fold(enc)
	if got := folded.Width(); got != svc.SyllableBits() {
		t.Errorf("folded width = %d, want %d", got, svc.SyllableBits())
	}
}

func TestWithMaxSyllables(t *testing.T) {
	svc := newTestService(t, WithMaxSyllables(3))
	if got := svc.MaxSyllables(); got != 3 {
		t.Errorf("MaxSyllables() = %d, want 3", got)
	}

	enc, err := svc.EncodeWord("kæt", 0)
	if err != nil {
		t.Fatalf("EncodeWord error: %v", err)
	}
	if got := enc.Width(); got != 3*38 {
		t.Errorf("Width() = %d, want %d", got, 3*38)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.MaxSyllables = 4
	cfg.Analysis.UnknownPolicy = "skip"

	svc, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig error: %v", err)
	}
	if got := svc.Schema().Name(); got != "en-gb" {
		t.Errorf("schema = %q, want en-gb", got)
	}
	if got := svc.MaxSyllables(); got != 4 {
		t.Errorf("MaxSyllables() = %d, want 4", got)
	}

	// Skip policy tolerates unknown symbols.
	if _, err := svc.Tokenize("kæxt"); err != nil {
		t.Errorf("Tokenize with skip policy error: %v", err)
	}
}

func TestFromConfig_UnknownLanguage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "tlh"

	if _, err := FromConfig(cfg); err == nil {
		t.Fatal("expected error for unregistered language")
	}
}
