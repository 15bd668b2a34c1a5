package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type DashboardProvider interface {
	Stats(ctx context.Context, userID string) (*models.DashboardStats, error)
}

type DashboardHandler struct {
	dashboard DashboardProvider
	log       *zap.Logger
}

func NewDashboardHandler(dashboard DashboardProvider, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, log: log}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Global counts and recent activity. With user_id also the user's tasks and projects.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "User ID"
// @Success 200 {object} models.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	stats, err := h.dashboard.Stats(ctx, c.Query("user_id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stats)
}
