package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const keySize = 32

// GenerateBase64Key returns a random 32 byte key, base64 URL encoded, usable as PASETO_SECRET or VAULT_SECRET.
func GenerateBase64Key() (string, error) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}
