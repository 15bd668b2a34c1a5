package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"ops-backend/config/middleware"
	"ops-backend/models"
	"ops-backend/pkg/paseto"
	"ops-backend/repository"
)

type stubTokens map[string]*paseto.Claims

func (s stubTokens) ValidateToken(token string) (*paseto.Claims, error) {
	claims, ok := s[token]
	if !ok {
		return nil, paseto.ErrInvalidToken
	}
	return claims, nil
}

var testTokens = stubTokens{
	"admin":  {UserID: "root", Role: models.RoleAdmin},
	"intern": {UserID: "intern", Role: models.RoleIntern},
}

type memUsers map[string]*models.User

func (m memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m memUsers) Update(_ context.Context, id string, set bson.M) error {
	u, ok := m[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := set["name"].(string); ok {
		u.Name = v
	}
	if v, ok := set["role"].(string); ok {
		u.Role = v
	}
	return nil
}

func newUserApp(users memUsers) *fiber.App {
	h := NewUserHandler(users, zap.NewNop())
	app := fiber.New()
	app.Put("/users/:id", middleware.AuthMiddleware(testTokens), h.UpdateUser)
	return app
}

func putUser(t *testing.T, app *fiber.App, id, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := jsonRequest(t, http.MethodPut, "/users/"+id, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return send(t, app, req)
}

func strPtr(s string) *string { return &s }

func TestUserHandler_UpdateUser_Ownership(t *testing.T) {
	users := memUsers{
		"intern": {ID: "intern", Name: "Ina", Role: models.RoleIntern},
		"victim": {ID: "victim", Name: "Vic", Role: models.RoleTech},
	}
	app := newUserApp(users)

	resp, _ := putUser(t, app, "victim", "intern", models.UserUpdatePayload{Role: strPtr(models.RoleAdmin)})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, models.RoleTech, users["victim"].Role)

	resp, _ = putUser(t, app, "victim", "intern", models.UserUpdatePayload{Name: strPtr("Hacked")})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Vic", users["victim"].Name)

	resp, body := putUser(t, app, "intern", "intern", models.UserUpdatePayload{Name: strPtr("Ina B")})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ina B", body["name"])
}

func TestUserHandler_UpdateUser_RoleIsAdminOnly(t *testing.T) {
	users := memUsers{
		"intern": {ID: "intern", Name: "Ina", Role: models.RoleIntern},
	}
	app := newUserApp(users)

	resp, _ := putUser(t, app, "intern", "intern", models.UserUpdatePayload{Role: strPtr(models.RoleAdmin)})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.RoleIntern, users["intern"].Role)

	resp, body := putUser(t, app, "intern", "intern", models.UserUpdatePayload{Name: strPtr("Ina"), Role: strPtr(models.RoleAdmin)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.RoleIntern, body["role"])

	resp, body = putUser(t, app, "intern", "admin", models.UserUpdatePayload{Role: strPtr(models.RoleTech)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.RoleTech, body["role"])

	resp, _ = putUser(t, app, "ghost", "admin", models.UserUpdatePayload{Name: strPtr("x")})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
