package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/config/middleware"
	"ops-backend/models"
)

type Authenticator interface {
	Register(ctx context.Context, payload models.UserRegisterPayload) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

type AuthHandler struct {
	auth Authenticator
	log  *zap.Logger
}

func NewAuthHandler(auth Authenticator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register godoc
// @Summary Register User
// @Description Creates a user with a bcrypt hashed password. Usernames are unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse "Admin role needs an admin token"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}
	if payload.Role == models.RoleAdmin && !middleware.IsAdmin(c) {
		return respondError(c, h.log, forbidden("Only an admin can register an Admin account"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	user, err := h.auth.Register(ctx, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary Login
// @Description Returns a 24h PASETO token together with the user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Username and password"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	token, user, err := h.auth.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.LoginSuccessResponse{Token: token, User: *user})
}
