package paseto

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"ops-backend/config"
	"ops-backend/models"
)

const defaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Maker issues and validates v2.local tokens with a 32 byte symmetric key.
type Maker struct {
	v2  *paseto.V2
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewPasetoMaker(secret string) (*Maker, error) {
	key, err := config.DecodeKey(secret)
	if err != nil {
		return nil, fmt.Errorf("paseto secret: %w", err)
	}
	return &Maker{v2: paseto.NewV2(), key: key, ttl: defaultTokenTTL, now: time.Now}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := m.now()

	token := paseto.JSONToken{
		Subject:    user.ID,
		IssuedAt:   now,
		Expiration: now.Add(m.ttl),
		NotBefore:  now,
	}
	token.Set("user_id", user.ID)
	token.Set("username", user.Username)
	token.Set("role", user.Role)

	return m.v2.Encrypt(m.key, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.v2.Decrypt(tokenString, m.key, &token, &footer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if err := token.Validate(paseto.ValidAt(m.now())); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims := &Claims{
		UserID:   token.Get("user_id"),
		Username: token.Get("username"),
		Role:     token.Get("role"),
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	return claims, nil
}
