package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateBase64Key generates a secure random key and returns it base64
// URL-encoded. PASETO v2 local requires size 32.
func GenerateBase64Key(size int) (string, error) {
	if size != 32 {
		return "", fmt.Errorf("PASETO v2 local requires a 32-byte key")
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}
