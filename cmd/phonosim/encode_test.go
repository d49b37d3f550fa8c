package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := runCommand(t, "encode", "kæt", "--max-syllables", "2")
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		t.Fatalf("output = %q, want ipa and bit string", out)
	}
	if len(fields[1]) != 76 {
		t.Errorf("encoding length = %d, want 76", len(fields[1]))
	}
}

func TestEncodeCommand_Fold(t *testing.T) {
	out, err := runCommand(t, "encode", "kæt", "--fold")
	if err != nil {
		t.Fatalf("encode --fold error: %v", err)
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		t.Fatalf("output = %q, want ipa and bit string", out)
	}
	if len(fields[1]) != 38 {
		t.Errorf("folded length = %d, want 38", len(fields[1]))
	}
}

func TestTokenizeCommand(t *testing.T) {
	out, err := runCommand(t, "tokenize", "strɪŋz")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if !strings.Contains(out, "s t r ɪ ŋ z") {
		t.Errorf("output = %q, want token listing", out)
	}
}

func TestTokenizeCommand_UnknownSymbol(t *testing.T) {
	if _, err := runCommand(t, "tokenize", "kæx"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestSyllabifyCommand(t *testing.T) {
	out, err := runCommand(t, "syllabify", "ɪnsaɪt")
	if err != nil {
		t.Fatalf("syllabify error: %v", err)
	}
	if !strings.Contains(out, "2 syllables") {
		t.Errorf("output = %q, want syllable count", out)
	}
}
