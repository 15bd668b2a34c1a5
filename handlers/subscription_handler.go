package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type SubscriptionManager interface {
	List(ctx context.Context) ([]models.Subscription, error)
	Create(ctx context.Context, payload models.SubscriptionCreatePayload) (*models.Subscription, error)
	Update(ctx context.Context, id string, payload models.SubscriptionUpdatePayload) (*models.Subscription, error)
	Delete(ctx context.Context, id string) error
	Credentials(ctx context.Context, id string) (*models.SubscriptionCredentials, error)
}

type SubscriptionHandler struct {
	subs SubscriptionManager
	log  *zap.Logger
}

func NewSubscriptionHandler(subs SubscriptionManager, log *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs, log: log}
}

func (h *SubscriptionHandler) GetAll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	subs, err := h.subs.List(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(subs)
}

func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var payload models.SubscriptionCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	sub, err := h.subs.Create(ctx, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	var payload models.SubscriptionUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	sub, err := h.subs.Update(ctx, c.Params("id"), payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(sub)
}

func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.subs.Delete(ctx, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.MessageResponse{Message: "Subscription deleted successfully"})
}

// GetCredentials godoc
// @Summary Reveal subscription credentials
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} models.SubscriptionCredentials
// @Failure 404 {object} models.ErrorResponse
// @Router /subscriptions/{id}/credentials [get]
func (h *SubscriptionHandler) GetCredentials(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	creds, err := h.subs.Credentials(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(creds)
}
