// Package vault seals short secrets (subscription passwords) with XChaCha20-Poly1305.
package vault

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/aead/chacha20poly1305"

	"ops-backend/config"
)

var ErrCorrupted = errors.New("vault: sealed value is corrupted")

type Vault struct {
	key []byte
}

func New(secret string) (*Vault, error) {
	key, err := config.DecodeKey(secret)
	if err != nil {
		return nil, fmt.Errorf("vault secret: %w", err)
	}
	return &Vault{key: key}, nil
}

// Seal returns base64(nonce || ciphertext). The empty string seals to the empty string.
func (v *Vault) Seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	aead, err := chacha20poly1305.NewXCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("vault: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("vault: nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (v *Vault) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrCorrupted
	}
	aead, err := chacha20poly1305.NewXCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("vault: %w", err)
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrCorrupted
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrCorrupted
	}
	return string(plain), nil
}
