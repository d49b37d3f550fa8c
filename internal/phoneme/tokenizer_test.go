package phoneme

import (
	"errors"
	"reflect"
	"testing"

	"github.com/example/go-phonosim/internal/schema"
)

func englishGB(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.EnglishGB()
	if err != nil {
		t.Fatalf("EnglishGB() error: %v", err)
	}
	return s
}

func TestTokenize(t *testing.T) {
	tok := NewTokenizer(englishGB(t))

	cases := []struct {
		name string
		ipa  string
		want []string
	}{
		{"single consonant", "k", []string{"k"}},
		{"cat", "kæt", []string{"k", "æ", "t"}},
		{"strings", "strɪŋz", []string{"s", "t", "r", "ɪ", "ŋ", "z"}},
		{"longest match wins", "tʃɜːtʃ", []string{"tʃ", "ɜː", "tʃ"}},
		{"diphthong over monophthong", "taɪm", []string{"t", "aɪ", "m"}},
		{"long vowel over short", "nɑːsti", []string{"n", "ɑː", "s", "t", "i"}},
		{"empty input", "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tok.Tokenize(tc.ipa)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tc.ipa, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.ipa, got, tc.want)
			}
		})
	}
}

func TestTokenize_UnknownPhonemeFailFast(t *testing.T) {
	tok := NewTokenizer(englishGB(t))

	_, err := tok.Tokenize("kæx")
	if err == nil {
		t.Fatal("expected error for unknown symbol")
	}

	var unknown *UnknownPhonemeError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownPhonemeError", err)
	}
	if unknown.Fragment != "x" {
		t.Errorf("Fragment = %q, want %q", unknown.Fragment, "x")
	}
	if unknown.Offset != 2 {
		t.Errorf("Offset = %d, want 2", unknown.Offset)
	}
	if unknown.Input != "kæx" {
		t.Errorf("Input = %q, want %q", unknown.Input, "kæx")
	}
}

func TestTokenize_SkipUnknown(t *testing.T) {
	tok := NewTokenizer(englishGB(t), WithPolicy(SkipUnknown))

	got, err := tok.Tokenize("kæxt")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []string{"k", "æ", "t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", FailFast, false},
		{"fail", FailFast, false},
		{"skip", SkipUnknown, false},
		{"ignore", FailFast, true},
	}
	for _, tc := range cases {
		got, err := ParsePolicy(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePolicy(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePolicy(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
