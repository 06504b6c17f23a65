package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecureRandomString returns numBytes of cryptographically
// secure randomness, hex encoded, so the result is 2*numBytes
// characters long. Used for opaque refresh tokens.
func GenerateSecureRandomString(numBytes int) (string, error) {
	if numBytes <= 0 {
		return "", fmt.Errorf("random string length must be positive, got %d", numBytes)
	}
	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
