package zbase32

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is the sentinel matched by errors.Is for every
// *InvalidCharacterError returned from this package.
var ErrInvalidCharacter = errors.New("zbase32: invalid character")

// InvalidCharacterError reports the first character of an input that
// has no z-base-32 interpretation: not an alphabet character, not a
// documented case or transcription variant, and not the separator.
type InvalidCharacterError struct {
	// Char is the offending byte.
	Char byte
	// Pos is the 1-based position of Char within Input.
	Pos int
	// Input is the full text being validated, kept for diagnostics.
	Input string
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("zbase32: invalid character %q at position %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
