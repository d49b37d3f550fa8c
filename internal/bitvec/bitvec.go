// Package bitvec provides fixed-width bit vectors used for phoneme
// feature encodings. A Vector behaves as a value: every operation
// returns a new Vector and never mutates its operands.
package bitvec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a fixed-width ordered sequence of bits. Bit 0 is the first
// feature column of the schema that produced the vector. The zero value
// is a zero-width vector.
type Vector struct {
	bits  *bitset.BitSet
	width uint
}

// New returns an all-zero vector of the given width.
func New(width uint) Vector {
	return Vector{bits: bitset.New(width), width: width}
}

// FromBits builds a vector whose width equals len(bits).
func FromBits(bits []bool) Vector {
	v := New(uint(len(bits)))
	for i, b := range bits {
		if b {
			v.bits.Set(uint(i))
		}
	}
	return v
}

// FromString parses a pattern of '0' and '1' characters, bit 0 first.
func FromString(s string) (Vector, error) {
	v := New(uint(len(s)))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			v.bits.Set(uint(i))
		default:
			return Vector{}, fmt.Errorf("bit pattern %q: invalid character %q at %d", s, c, i)
		}
	}
	return v, nil
}

// Width returns the number of bits in the vector.
func (v Vector) Width() uint { return v.width }

// Test reports whether bit i is set. Out-of-range bits read as zero.
func (v Vector) Test(i uint) bool {
	return v.bits != nil && i < v.width && v.bits.Test(i)
}

// Count returns the number of set bits.
func (v Vector) Count() uint {
	if v.bits == nil {
		return 0
	}
	return v.bits.Count()
}

// IsZero reports whether no bit is set.
func (v Vector) IsZero() bool {
	return v.bits == nil || !v.bits.Any()
}

// Equal reports whether both vectors have the same width and the same
// bits set.
func (v Vector) Equal(o Vector) bool {
	if v.width != o.width {
		return false
	}
	return v.set().Equal(o.set())
}

// Or returns the bitwise union of two vectors of equal width.
func (v Vector) Or(o Vector) Vector {
	mustMatch(v, o)
	out := v.clone()
	out.bits.InPlaceUnion(o.set())
	return out
}

// Xor returns the bitwise symmetric difference of two vectors of equal
// width.
func (v Vector) Xor(o Vector) Vector {
	mustMatch(v, o)
	out := v.clone()
	out.bits.InPlaceSymmetricDifference(o.set())
	return out
}

// Concat returns v followed by o, width v.Width()+o.Width().
func (v Vector) Concat(o Vector) Vector {
	out := New(v.width + o.width)
	for i := uint(0); i < v.width; i++ {
		if v.Test(i) {
			out.bits.Set(i)
		}
	}
	for i := uint(0); i < o.width; i++ {
		if o.Test(i) {
			out.bits.Set(v.width + i)
		}
	}
	return out
}

// Slice returns bits [start, end) as a new vector of width end-start.
func (v Vector) Slice(start, end uint) Vector {
	if start > end || end > v.width {
		panic(fmt.Sprintf("bitvec: slice [%d:%d) out of range for width %d", start, end, v.width))
	}
	out := New(end - start)
	for i := start; i < end; i++ {
		if v.Test(i) {
			out.bits.Set(i - start)
		}
	}
	return out
}

// PadRight returns the vector extended with trailing zero bits to the
// given width. A width not greater than the current one returns the
// vector unchanged.
func (v Vector) PadRight(width uint) Vector {
	if width <= v.width {
		return v
	}
	out := New(width)
	for i := uint(0); i < v.width; i++ {
		if v.Test(i) {
			out.bits.Set(i)
		}
	}
	return out
}

// String renders the vector as '0'/'1' characters, bit 0 first. The
// rendering is unique per (width, bits) pair and is usable as a map key.
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(int(v.width))
	for i := uint(0); i < v.width; i++ {
		if v.Test(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (v Vector) clone() Vector {
	out := New(v.width)
	if v.bits != nil {
		out.bits = v.bits.Clone()
	}
	return out
}

func (v Vector) set() *bitset.BitSet {
	if v.bits == nil {
		return bitset.New(v.width)
	}
	return v.bits
}

func mustMatch(a, b Vector) {
	if a.width != b.width {
		panic(fmt.Sprintf("bitvec: width mismatch %d != %d", a.width, b.width))
	}
}
