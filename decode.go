// This z-base-32 decoding implementation is deliberately forgiving: it
// folds case, accepts the documented transcription substitutions, and
// truncates rather than rejects inputs whose length leaves spare bits.
// Unused low bits of a partial final character are dropped without
// being checked against zero. The only failure mode is a character the
// decode table does not know at all.

package zbase32

import (
	"slices"
	"unsafe"
)

// DecodedLength returns the number of bytes produced by decoding n
// input characters. When withSeparators is true, n is interpreted as
// separator-formatted input with one separator per 9-character stride.
//
// It returns -1 if n is negative.
func DecodedLength(n int, withSeparators bool) int {
	if n < 0 {
		return -1
	}

	if withSeparators {
		n -= n / 9
	}

	return decodedLen(n)
}

// decodedLen returns the number of bytes encoded by n data characters.
// Every length is decodable; spare trailing bits are truncated.
func decodedLen(n int) int {
	return (n/8)*5 + (n%8)*5/8
}

// separated reports whether src is separator-formatted: the decoder
// only recognizes separators in their canonical positions, keyed off
// the 9th character.
func separated(src []byte) bool {
	return len(src) >= 9 && src[8] == Separator
}

// decode unpacks n data characters into decodedLen(n) bytes. stride is
// the number of input bytes consumed per 8-character group: 9 when a
// separator follows each group, 8 otherwise. src must already be
// validated; decodeTab lookups are trusted.
func decode(dstPtr, srcPtr unsafe.Pointer, n, stride int) {

	for range n / 8 {
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]
		c4 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 4))]
		c5 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 5))]
		c6 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 6))]
		c7 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 7))]

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		*(*byte)(unsafe.Add(dstPtr, 2)) = ((c3&0x0F)<<4 | c4>>1)
		*(*byte)(unsafe.Add(dstPtr, 3)) = ((c4&0x01)<<7 | c5<<2 | c6>>3)
		*(*byte)(unsafe.Add(dstPtr, 4)) = ((c6&0x07)<<5 | c7)

		srcPtr = unsafe.Add(srcPtr, stride)
		dstPtr = unsafe.Add(dstPtr, 5)
	}

	// Tail. Remainders 1, 3 and 6 leave a character whose bits do not
	// complete another byte; those bits are dropped.
	switch n % 8 {
	case 2, 3:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
	case 4:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
	case 5, 6:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]
		c4 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 4))]

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		*(*byte)(unsafe.Add(dstPtr, 2)) = ((c3&0x0F)<<4 | c4>>1)
	case 7:
		c0 := decodeTab[*(*byte)(srcPtr)]
		c1 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 3))]
		c4 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 4))]
		c5 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 5))]
		c6 := decodeTab[*(*byte)(unsafe.Add(srcPtr, 6))]

		*(*byte)(dstPtr) = (c0<<3 | c1>>2)
		*(*byte)(unsafe.Add(dstPtr, 1)) = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		*(*byte)(unsafe.Add(dstPtr, 2)) = ((c3&0x0F)<<4 | c4>>1)
		*(*byte)(unsafe.Add(dstPtr, 3)) = ((c4&0x01)<<7 | c5<<2 | c6>>3)
	}
}

// dataShape returns the number of data characters in src and the
// stride the decode loop should advance by per 8-character group.
func dataShape(src []byte) (int, int) {
	n := len(src)

	if separated(src) {
		return n - n/9, 9
	}

	return n, 8
}

// UnsafeDecode decodes the source slice into the destination slice.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the decoded form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// Knowing the length of the slice now occupied by the decoded form of
// src is the responsibility of the caller. It can be computed with
// DecodedLength.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= DecodedLength(len(src), separator-formatted)
func UnsafeDecode(dst, src []byte) error {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if len(src) == 0 {
		panic("zbase32: invalid decode source length")
	}

	m, stride := dataShape(src)
	n := decodedLen(m)
	if len(dst) < n {
		panic("zbase32: decode destination too short")
	}

	if err := validate(src); err != nil {
		return err
	}

	if n > 0 {
		decode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), m, stride)
	}

	return nil
}

// Decode returns the decoded form of src if src is not empty. If src
// is empty nil is returned.
//
// Decoding fails with a *InvalidCharacterError, before any output is
// produced, if src contains a character that is neither a z-base-32
// character, one of its case or transcription variants, nor the
// separator.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	if err := validate(src); err != nil {
		return nil, err
	}

	m, stride := dataShape(src)
	n := decodedLen(m)
	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, n)

	decode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), m, stride)

	return dst, nil
}

// DecodeString is Decode for a string input.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If decoding fails nothing is appended and dst is returned as-is
// alongside the error.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	if err := validate(src); err != nil {
		return dst, err
	}

	m, stride := dataShape(src)
	n := decodedLen(m)
	if n == 0 {
		return dst, nil
	}

	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	decode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), m, stride)

	return dst, nil
}
