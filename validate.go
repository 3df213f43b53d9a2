package zbase32

// validate scans every byte of src and returns a *InvalidCharacterError
// for the first one whose decode slot is the invalid sentinel. Valid
// values and the separator's ignore marker both pass. It never produces
// partial results so decoding can run without per-character checks.
func validate(src []byte) error {
	for i, c := range src {
		if decodeTab[c] == zbInvalid {
			return &InvalidCharacterError{
				Char:  c,
				Pos:   i + 1,
				Input: string(src),
			}
		}
	}

	return nil
}

// Validate reports whether src decodes cleanly: every byte must be a
// z-base-32 character, one of its case or transcription variants, or
// the separator. It fails fast on the first offending byte.
func Validate(src []byte) error {
	return validate(src)
}

// ValidateString is Validate for a string input.
func ValidateString(s string) error {
	return validate([]byte(s))
}
