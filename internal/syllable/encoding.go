package syllable

import "github.com/example/go-phonosim/internal/bitvec"

// Bits returns the width of one fully populated syllable: onset and
// coda at the consonant width plus the nucleus at the vowel width.
func Bits(consWidth, vowWidth uint) uint {
	return 2*consWidth + vowWidth
}

// WordEncoding concatenates syllables into one fixed-width vector.
// Syllables are processed in reverse order so that word-final syllables
// sit at a fixed offset, which keeps suffixes comparable across words
// of different lengths. Within a syllable the present components are
// appended in onset, nucleus, coda order; absent components contribute
// nothing. After maxSyllables syllables the result is zero-padded on
// the right to exactly maxSyllables times the full syllable width.
func WordEncoding(sylls []Syllable, maxSyllables int, consWidth, vowWidth uint) (bitvec.Vector, error) {
	target := uint(maxSyllables) * Bits(consWidth, vowWidth)

	arr := bitvec.New(0)
	taken := 0
	for idx := len(sylls) - 1; idx >= 0 && taken < maxSyllables; idx-- {
		syl := sylls[idx]
		if syl.Onset != nil {
			arr = arr.Concat(*syl.Onset)
		}
		arr = arr.Concat(syl.Nucleus)
		if syl.Coda != nil {
			arr = arr.Concat(*syl.Coda)
		}
		taken++
	}

	if arr.Width() > target {
		return bitvec.Vector{}, &LengthOverflowError{Bits: arr.Width(), Max: target}
	}
	return arr.PadRight(target), nil
}

// Fold XOR-reduces every syllableBits-wide slice of a word encoding
// into a single slice. The reduction is lossy and not invertible;
// collisions between different words are expected. An encoding already
// at slice width is returned unchanged.
func Fold(enc bitvec.Vector, syllableBits uint) bitvec.Vector {
	if syllableBits == 0 || enc.Width() <= syllableBits {
		return enc.PadRight(syllableBits)
	}
	out := bitvec.New(syllableBits)
	for off := uint(0); off < enc.Width(); off += syllableBits {
		end := off + syllableBits
		if end > enc.Width() {
			end = enc.Width()
		}
		out = out.Xor(enc.Slice(off, end).PadRight(syllableBits))
	}
	return out
}
