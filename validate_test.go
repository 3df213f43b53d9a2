package zbase32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Nil(Validate(nil))
	is.Nil(Validate([]byte{}))
	is.Nil(ValidateString(""))

	is.Nil(ValidateString("ybndrfg8ejkmcpqxot1uwisza345h769"))
	is.Nil(ValidateString("YBNDRFG8EJKMCPQXOT1UWISZA345H769"))
	is.Nil(ValidateString("0l|v2LV"))

	// the separator passes validation anywhere, not just in its
	// canonical positions
	is.Nil(ValidateString("--------"))
	is.Nil(ValidateString("y-y"))
}

func TestValidateInvalidCharacter(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	err := ValidateString("yy.yy")
	is.Error(err)
	is.ErrorIs(err, ErrInvalidCharacter)
	is.Equal(`zbase32: invalid character '.' at position 3`, err.Error())

	var icErr *InvalidCharacterError
	is.ErrorAs(err, &icErr)
	is.Equal(byte('.'), icErr.Char)
	is.Equal(3, icErr.Pos)
	is.Equal("yy.yy", icErr.Input)
}

func TestValidateFailsFast(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	var icErr *InvalidCharacterError
	is.ErrorAs(ValidateString("y!y!"), &icErr)
	is.Equal(byte('!'), icErr.Char)
	is.Equal(2, icErr.Pos)
}

func TestValidateExhaustive(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for i := range 256 {
		c := byte(i)

		err := Validate([]byte{c})
		if decodeTab[c] == zbInvalid {
			var icErr *InvalidCharacterError
			is.ErrorAs(err, &icErr)
			is.Equal(c, icErr.Char)
			is.Equal(1, icErr.Pos)
			continue
		}

		is.Nil(err)
	}
}
