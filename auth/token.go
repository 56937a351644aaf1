package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionToken returns 32 random bytes hex-encoded. The token is
// handed to the caller at login and never stored here; external layers
// may consume it.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
