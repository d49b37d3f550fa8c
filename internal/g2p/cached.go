package g2p

import (
	"context"
	"log/slog"
)

// CachedGenerator wraps another Generator with a persistent cache.
// Cache failures are logged and degrade to the inner generator rather
// than failing the lookup.
type CachedGenerator struct {
	inner         Generator
	cache         *Cache
	lang          string
	schemaVersion string
	log           *slog.Logger
}

func NewCachedGenerator(inner Generator, cache *Cache, lang, schemaVersion string, log *slog.Logger) *CachedGenerator {
	if log == nil {
		log = slog.Default()
	}
	return &CachedGenerator{
		inner:         inner,
		cache:         cache,
		lang:          lang,
		schemaVersion: schemaVersion,
		log:           log,
	}
}

func (g *CachedGenerator) Generate(ctx context.Context, word string) ([]Pronunciation, error) {
	cached, ok, err := g.cache.Get(ctx, word, g.lang, g.schemaVersion)
	if err != nil {
		g.log.Warn("g2p cache read failed", "word", word, "error", err)
	} else if ok {
		return cached, nil
	}

	prons, err := g.inner.Generate(ctx, word)
	if err != nil {
		return nil, err
	}
	if err := g.cache.Put(ctx, word, g.lang, g.schemaVersion, prons); err != nil {
		g.log.Warn("g2p cache write failed", "word", word, "error", err)
	}
	return prons, nil
}
