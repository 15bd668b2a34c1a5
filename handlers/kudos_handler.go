package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

const maxLeaderboardSize = 100

type KudosLedger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Leaderboard(ctx context.Context, limit int64) ([]models.KudosLeaderboardEntry, error)
}

type KudosHandler struct {
	kudos KudosLedger
	log   *zap.Logger
}

func NewKudosHandler(kudos KudosLedger, log *zap.Logger) *KudosHandler {
	return &KudosHandler{kudos: kudos, log: log}
}

// GetBalance godoc
// @Summary Kudos balance of a user
// @Tags Kudos
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} models.KudosBalance
// @Router /kudos/balance/{user_id} [get]
func (h *KudosHandler) GetBalance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID := c.Params("user_id")
	balance, err := h.kudos.Balance(ctx, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.KudosBalance{UserID: userID, Balance: balance})
}

// GetLeaderboard godoc
// @Summary Kudos leaderboard
// @Tags Kudos
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Entries to return (default 10, max 100)"
// @Success 200 {array} models.KudosLeaderboardEntry
// @Router /kudos/leaderboard [get]
func (h *KudosHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 || limit > maxLeaderboardSize {
		return respondError(c, h.log, badRequest("limit must be between 1 and 100", nil))
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	entries, err := h.kudos.Leaderboard(ctx, int64(limit))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(entries)
}
