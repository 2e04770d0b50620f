package common

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns size random bytes hex-encoded, so the string is twice
// size long. Auth tokens issued by the server are RandomHex(20).
func RandomHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to drop passwords from memory once a request body has been built.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// TokenHeaderValue formats a token for the Authorization header.
func TokenHeaderValue(token string) string {
	return AuthorizationScheme + " " + token
}
