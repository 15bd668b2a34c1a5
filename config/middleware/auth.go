package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ops-backend/models"
	"ops-backend/pkg/paseto"
)

const claimsKey = "user"

type TokenValidator interface {
	ValidateToken(token string) (*paseto.Claims, error)
}

func AuthMiddleware(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header is required"})
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header format must be Bearer <token>"})
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(claimsKey, claims)

		return c.Next()
	}
}

// OptionalAuthMiddleware stores the claims of a valid bearer token and lets every request through.
func OptionalAuthMiddleware(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c.Get("Authorization")); ok {
			if claims, err := tokens.ValidateToken(token); err == nil {
				c.Locals(claimsKey, claims)
			}
		}
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", false
	}
	return parts[1], true
}

// ClaimsFrom returns the claims stored by AuthMiddleware.
func ClaimsFrom(c *fiber.Ctx) (*paseto.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*paseto.Claims)
	return claims, ok
}

// IsAdmin reports whether the request carries admin claims.
func IsAdmin(c *fiber.Ctx) bool {
	claims, ok := ClaimsFrom(c)
	return ok && claims.Role == models.RoleAdmin
}
