package phoneme

import (
	"strings"
	"sync"

	"github.com/example/go-phonosim/internal/bitvec"
	"github.com/example/go-phonosim/internal/schema"
)

// Encode converts a feature map into a bit vector following the ordered
// column list. A column may be either:
//
//   - an "attr=value" pair ("place=alveolar"): the bit is set iff the
//     feature map has that attribute with exactly that value;
//   - a plain name: the bit is set iff the feature of that name is
//     present with a truthy value (true, or a non-empty categorical
//     string such as {"start": "a"}), or the name appears as a
//     categorical value anywhere in the map (column "velar" matches
//     {"place": "velar"}).
//
// Encode is a pure function: identical inputs always produce identical
// vectors.
func Encode(features schema.Features, columns []string) bitvec.Vector {
	bits := make([]bool, len(columns))
	for i, col := range columns {
		if attr, val, ok := strings.Cut(col, "="); ok {
			s, _ := features[attr].(string)
			bits[i] = s == val
			continue
		}
		if truthy(features[col]) {
			bits[i] = true
			continue
		}
		for _, v := range features {
			if s, ok := v.(string); ok && s == col {
				bits[i] = true
				break
			}
		}
	}
	return bitvec.FromBits(bits)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	default:
		return false
	}
}

// Encoder memoizes per-phoneme encodings against one schema. Safe for
// concurrent use.
type Encoder struct {
	schema *schema.Schema

	mu   sync.Mutex
	memo map[string]bitvec.Vector
}

func NewEncoder(s *schema.Schema) *Encoder {
	return &Encoder{
		schema: s,
		memo:   make(map[string]bitvec.Vector),
	}
}

// EncodePhoneme returns the bit vector for a phoneme under the columns
// of the given feature type.
func (e *Encoder) EncodePhoneme(p string, t schema.FeatureType) (bitvec.Vector, error) {
	key := string(t) + "\x00" + p

	e.mu.Lock()
	v, ok := e.memo[key]
	e.mu.Unlock()
	if ok {
		return v, nil
	}

	features, ok := e.schema.Features(p)
	if !ok {
		return bitvec.Vector{}, &UnknownPhonemeError{Fragment: p}
	}
	v = Encode(features, e.schema.Columns(t))

	e.mu.Lock()
	e.memo[key] = v
	e.mu.Unlock()

	return v, nil
}
