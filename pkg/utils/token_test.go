package utils

import (
	"encoding/hex"
	"testing"

	"github.com/matryer/is"
)

func TestGenerateTokenKey(t *testing.T) {
	is := is.New(t)

	key, err := GenerateTokenKey()
	is.NoErr(err)
	is.Equal(len(key), 40)

	_, err = hex.DecodeString(key)
	is.NoErr(err)

	other, err := GenerateTokenKey()
	is.NoErr(err)
	is.True(key != other)
}
