package phoneme

import "fmt"

// UnknownPhonemeError reports an IPA fragment that matched no phoneme in
// the schema. Offset is the rune position of the fragment in Input.
type UnknownPhonemeError struct {
	Input    string
	Offset   int
	Fragment string
}

func (e *UnknownPhonemeError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("unknown phoneme %q", e.Fragment)
	}
	return fmt.Sprintf("unknown phoneme %q at offset %d in %q", e.Fragment, e.Offset, e.Input)
}
