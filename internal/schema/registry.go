package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Builder constructs a schema for one language.
type Builder func() (*Schema, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Builder{
		"en-gb":    EnglishGB,
		"de":       German,
		"es":       Spanish,
		"da":       Danish,
		"combined": Combined,
	}
)

// Register adds a schema builder under a language code. Registering an
// existing code replaces the previous builder.
func Register(code string, build Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[code] = build
}

// ForLanguage builds the schema registered under the given code.
func ForLanguage(code string) (*Schema, error) {
	registryMu.RLock()
	build, ok := registry[code]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no schema registered for language %q (have %v)", code, Languages())
	}
	return build()
}

// Languages returns the registered language codes, sorted.
func Languages() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Combined merges the built-in language schemas into one cross-language
// inventory. Phonemes shared between languages resolve last-writer-wins
// in the order en-gb, de, es, da.
func Combined() (*Schema, error) {
	builders := []Builder{EnglishGB, German, Spanish, Danish}
	schemas := make([]*Schema, 0, len(builders))
	for _, build := range builders {
		s, err := build()
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return Merge("combined", schemas...)
}
