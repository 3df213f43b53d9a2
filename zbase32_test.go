package zbase32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testPayload returns a deterministic pseudo-random payload of n bytes.
func testPayload(n int) []byte {
	b := make([]byte, n)

	v := uint32(n)*2654435761 + 1
	for i := range b {
		v = v*1664525 + 1013904223
		b[i] = byte(v >> 24)
	}

	return b
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for _, withSeparators := range []bool{false, true} {
		for n := range 256 {
			src := testPayload(n)

			enc := Encode(src, withSeparators)
			is.Len(enc, EncodedLength(n, withSeparators))

			dec, err := Decode(enc)
			is.Nil(err)
			is.True(bytes.Equal(src, dec))

			s := EncodeToString(src, withSeparators)
			is.Equal(string(enc), s)

			dec, err = DecodeString(s)
			is.Nil(err)
			is.True(bytes.Equal(src, dec))
		}
	}
}

func TestRoundTripCaseInsensitive(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for _, withSeparators := range []bool{false, true} {
		for n := range 256 {
			src := testPayload(n)

			enc := bytes.ToUpper(Encode(src, withSeparators))

			dec, err := Decode(enc)
			is.Nil(err)
			is.True(bytes.Equal(src, dec))
		}
	}
}

func TestRoundTripTranscriptionErrors(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	substitutions := []struct{ canonical, misread byte }{
		{'o', '0'},
		{'u', 'v'},
		{'z', '2'},
		{'1', 'l'},
		{'1', '|'},
	}

	for _, sub := range substitutions {
		for _, withSeparators := range []bool{false, true} {
			for n := range 256 {
				src := testPayload(n)

				enc := Encode(src, withSeparators)
				enc = bytes.ReplaceAll(enc, []byte{sub.canonical}, []byte{sub.misread})

				dec, err := Decode(enc)
				is.Nil(err)
				is.True(bytes.Equal(src, dec))
			}
		}
	}
}

func TestEncodedLengthFormula(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for n := range 256 {
		src := testPayload(n)

		outLen := (n*8 + 4) / 5
		is.Len(Encode(src, false), outLen)

		seps := 0
		if outLen > 0 {
			seps = outLen / 8
			if outLen%8 == 0 {
				seps--
			}
		}
		is.Len(Encode(src, true), outLen+seps)
	}
}

func TestSeparatorPlacement(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for n := 1; n < 256; n++ {
		enc := Encode(testPayload(n), true)

		is.NotEqual(byte(Separator), enc[len(enc)-1])

		// separators sit exactly at every 9th position
		for i, c := range enc {
			if i%9 == 8 {
				is.Equal(byte(Separator), c)
				continue
			}
			is.NotEqual(byte(Separator), c)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Nil(Encode(nil, false))
	is.Nil(Encode(nil, true))
	is.Equal("", EncodeToString(nil, true))

	dec, err := Decode(nil)
	is.Nil(err)
	is.Nil(dec)

	dec, err = DecodeString("")
	is.Nil(err)
	is.Nil(dec)
}

func TestKnownVectors(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	tcs := []struct {
		src    string
		exp    string
		expSep string
	}{
		{"", "", ""},
		{"\xff", "9h", "9h"},
		{"\x00", "yy", "yy"},
		{"\xd4\x7a\x04", "4t7ye", "4t7ye"},
		{"hello", "pb1sa5dx", "pb1sa5dx"},
		{"asdasd", "cf3seamuco", "cf3seamu-co"},
		{
			"The quick brown fox jumps over the lazy dog.",
			"ktwgkedtqiwsg43ycj3g675qrbug66bypj4s4hdurbzzc3m1rb4go3jyptozw6jyctzsqmo",
			"ktwgkedt-qiwsg43y-cj3g675q-rbug66by-pj4s4hdu-rbzzc3m1-rb4go3jy-ptozw6jy-ctzsqmo",
		},
	}

	for _, tc := range tcs {
		src := []byte(tc.src)

		is.Equal(tc.exp, EncodeToString(src, false))
		is.Equal(tc.expSep, EncodeToString(src, true))

		dec, err := DecodeString(tc.exp)
		is.Nil(err)
		is.True(bytes.Equal(src, dec))

		dec, err = DecodeString(tc.expSep)
		is.Nil(err)
		is.True(bytes.Equal(src, dec))
	}
}
