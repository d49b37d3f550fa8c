package g2p

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "g2p.db"))
	if err != nil {
		t.Fatalf("OpenCache error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_RoundTrip(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	want := []Pronunciation{
		{IPA: "ˈɪnsaɪt", Confidence: 1.0},
		{IPA: "ɪnˈsaɪt", Confidence: 0.5},
	}
	if err := c.Put(ctx, "insight", "en-gb", "v1", want); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, ok, err := c.Get(ctx, "insight", "en-gb", "v1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !ok {
		t.Fatal("Get = not found after Put")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}

func TestCache_MissReturnsNotFound(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get(context.Background(), "ghost", "en-gb", "v1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok {
		t.Error("Get = found, want miss")
	}
}

func TestCache_KeyedBySchemaVersion(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "cat", "en-gb", "v1", []Pronunciation{{IPA: "kæt", Confidence: 1}}); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	if _, ok, _ := c.Get(ctx, "cat", "en-gb", "v2"); ok {
		t.Error("entry for v1 visible under schema version v2")
	}
	if _, ok, _ := c.Get(ctx, "cat", "de", "v1"); ok {
		t.Error("entry for en-gb visible under language de")
	}
}

func TestCache_PutReplaces(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	first := []Pronunciation{{IPA: "a", Confidence: 1}, {IPA: "b", Confidence: 1}}
	second := []Pronunciation{{IPA: "c", Confidence: 1}}
	if err := c.Put(ctx, "w", "en-gb", "v1", first); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := c.Put(ctx, "w", "en-gb", "v1", second); err != nil {
		t.Fatalf("second Put error: %v", err)
	}

	got, _, err := c.Get(ctx, "w", "en-gb", "v1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("Get = %v, want %v after replace", got, second)
	}
}

type countingGenerator struct {
	calls int
	prons []Pronunciation
}

func (g *countingGenerator) Generate(_ context.Context, _ string) ([]Pronunciation, error) {
	g.calls++
	return g.prons, nil
}

func TestCachedGenerator_HitsCacheOnSecondCall(t *testing.T) {
	c := openTestCache(t)
	inner := &countingGenerator{prons: []Pronunciation{{IPA: "kæt", Confidence: 1}}}
	gen := NewCachedGenerator(inner, c, "en-gb", "v1", nil)
	ctx := context.Background()

	first, err := gen.Generate(ctx, "cat")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	second, err := gen.Generate(ctx, "cat")
	if err != nil {
		t.Fatalf("second Generate error: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("inner generator called %d times, want 1", inner.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result %v differs from generated %v", second, first)
	}
}
