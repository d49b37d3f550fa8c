// Package syllable groups phoneme tokens into onset/nucleus/coda runs
// and aggregates syllables into fixed-width word encodings.
package syllable

import (
	"fmt"

	"github.com/example/go-phonosim/internal/bitvec"
)

// Syllable holds the encoded components of one syllable. Onset and Coda
// are nil when the cluster is empty; consumers must treat absence as an
// all-zero vector of the consonant width. Nucleus is always present.
type Syllable struct {
	Onset   *bitvec.Vector
	Nucleus bitvec.Vector
	Coda    *bitvec.Vector
}

// OnsetBits returns the onset, or an all-zero vector of the given width
// when the onset is absent.
func (s Syllable) OnsetBits(width uint) bitvec.Vector {
	if s.Onset == nil {
		return bitvec.New(width)
	}
	return *s.Onset
}

// CodaBits returns the coda, or an all-zero vector of the given width
// when the coda is absent.
func (s Syllable) CodaBits(width uint) bitvec.Vector {
	if s.Coda == nil {
		return bitvec.New(width)
	}
	return *s.Coda
}

// InvariantViolationError reports a broken precondition inside the
// syllabifier state machine. It indicates a mismatch between the
// tokenizer output and the schema's vowel set and is never recoverable.
type InvariantViolationError struct {
	Token    string
	Position int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("nucleus state entered on non-vowel token %q at position %d (tokenizer and vowel set disagree)",
		e.Token, e.Position)
}

// LengthOverflowError reports a word encoding that accumulated more bits
// than the padding target allows. It indicates a malformed syllable
// record.
type LengthOverflowError struct {
	Bits uint
	Max  uint
}

func (e *LengthOverflowError) Error() string {
	return fmt.Sprintf("word encoding holds %d bits, exceeding the padding target of %d", e.Bits, e.Max)
}
