package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"ops-backend/config/middleware"
	"ops-backend/models"
)

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, set bson.M) error
}

type UserHandler struct {
	users UserStore
	log   *zap.Logger
}

func NewUserHandler(users UserStore, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// GetMe godoc
// @Summary Current user
// @Description Returns the user the bearer token was issued to.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	user, err := h.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Owners may edit their own profile. Only admins may edit other users or change a role.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body models.UserUpdatePayload true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	id := c.Params("id")
	admin := claims.Role == models.RoleAdmin
	if !admin && claims.UserID != id {
		return respondError(c, h.log, forbidden("You can only update your own profile"))
	}

	var payload models.UserUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}
	set := payload.Changes()
	if !admin {
		delete(set, "role")
	}
	if len(set) == 0 {
		return respondError(c, h.log, badRequest("No data to update", nil))
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.users.Update(ctx, id, set); err != nil {
		return respondError(c, h.log, notFound("User", err))
	}
	user, err := h.users.FindByID(ctx, id)
	if err != nil {
		return respondError(c, h.log, notFound("User", err))
	}
	return c.JSON(user)
}
