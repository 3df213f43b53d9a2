// A z-base-32 implementation: Zimmermann's human-oriented base32 with
// case insensitive decoding and transcription-error corrections.

package zbase32

const (
	zbInvalid = 0xFF
	zbIgnore  = 0xFE
)

// Separator is the formatting character the encoder may insert after
// every 8th output character. It carries no data and the decoder skips
// it in its canonical positions.
const Separator = '-'

//
// encode and decode tables follow the z-base-32 grammar: the permuted
// alphabet, case insensitive decoding, and fixed corrections for the
// usual misreadings (0 for o, 2 for z, l and | for 1, v for u)
//

var encodeTab, decodeTab = func() ([32]byte, [256]byte) {
	const (
		zbChars   = "ybndrfg8ejkmcpqxot1uwisza345h769"
		zbLowToUp = ('a' - 'A')
	)

	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = zbInvalid
	}

	lowLetter := func(v, i byte) {
		dec[v] = i
		dec[v-zbLowToUp] = i
	}

	for i := range zbChars {
		i := byte(i)
		v := zbChars[i]

		enc[i] = v
		if v >= 'a' {
			lowLetter(v, i)
			continue
		}

		dec[v] = i
	}

	// transcription corrections
	dec['0'] = dec['o']
	dec['2'] = dec['z']
	dec['|'] = dec['1']
	lowLetter('l', dec['1'])
	lowLetter('v', dec['u'])

	dec[Separator] = zbIgnore

	return enc, dec
}()
