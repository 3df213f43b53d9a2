package zbase32

import (
	"slices"
	"unsafe"
)

// EncodedLength returns the number of bytes required to encode n bytes,
// including separators when withSeparators is true. It returns -1 if
// the input byte length cannot be encoded properly.
//
// If the input is zero, zero will be returned. Remember that
// UnsafeEncode requires the src argument to have a length greater
// than zero.
func EncodedLength(n int, withSeparators bool) int {
	if n < 0 {
		return -1
	}

	result := encodedLenExpression(n)
	if result <= n && n != 0 {
		return -1
	}

	if !withSeparators || result == 0 {
		return result
	}

	seps := separatorCount(result)
	if result+seps < result {
		return -1
	}

	return result + seps
}

func encodedLenExpression(n int) int {
	return (n/5)*8 + ((n%5)*8+4)/5
}

// separatorCount returns the number of separators interleaved into an
// encoded output of n characters: one after every 8th character except
// a trailing position.
func separatorCount(n int) int {
	seps := n / 8
	if n%8 == 0 && n > 0 {
		seps--
	}

	return seps
}

func encodedLen(n int, withSeparators bool) int {
	result := encodedLenExpression(n)
	if result <= n {
		panic("zbase32: invalid encode source length")
	}

	if !withSeparators {
		return result
	}

	seps := separatorCount(result)
	if result+seps < result {
		panic("zbase32: invalid encode source length")
	}

	return result + seps
}

func encode(dstPtr, srcPtr unsafe.Pointer, n int, withSeparators bool) {

	for rem := n; rem >= 5; rem -= 5 {
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))
		b4 := *(*byte)(unsafe.Add(srcPtr, 4))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2<<1)|(b3>>7))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[((b3<<3)|(b4>>5))&31]
		*(*byte)(unsafe.Add(dstPtr, 7)) = encodeTab[b4&31]

		srcPtr = unsafe.Add(srcPtr, 5)
		dstPtr = unsafe.Add(dstPtr, 8)

		// no separator at the very end of the output
		if withSeparators && rem > 5 {
			*(*byte)(dstPtr) = Separator
			dstPtr = unsafe.Add(dstPtr, 1)
		}
	}

	// Tail (no padding).
	switch n % 5 {
	case 1:
		b0 := *(*byte)(srcPtr)

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[(b0<<2)&31]
	case 2:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[(b1<<4)&31]
	case 3:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[(b2<<1)&31]
	case 4:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2<<1)|(b3>>7))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[(b3<<3)&31]
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// Knowing the length of the slice now occupied by the encoded form of
// src is the responsibility of the caller. It can be computed with
// EncodedLength.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= encodedLen(len(src), withSeparators)
func UnsafeEncode(dst, src []byte, withSeparators bool) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src), withSeparators); len(dst) < n {
		panic("zbase32: encode destination too short")
	}

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), withSeparators)
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src. When withSeparators is true a separator is
// written after every 8th output character, except when it would be
// the final character.
func Encode(src []byte, withSeparators bool) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n, withSeparators)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), withSeparators)

	return dst
}

// EncodeToString returns "" if src is empty, otherwise it returns the
// encoded form of src as a string.
func EncodeToString(src []byte, withSeparators bool) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n, withSeparators)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), withSeparators)

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte, withSeparators bool) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n, withSeparators)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), len(src), withSeparators)

	return dst
}
