package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenKeyLength is the byte length of an auth token key; hex-encoded it
// yields the 40-character keys clients present as "Authorization: Token <key>".
const TokenKeyLength = 20

func GenerateTokenKey() (string, error) {
	bytes := make([]byte, TokenKeyLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
