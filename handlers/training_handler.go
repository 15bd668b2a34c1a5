package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type ProgressTracker interface {
	UpdateProgress(ctx context.Context, courseID string, payload models.TrainingProgressPayload) (*models.TrainingProgress, error)
}

type ProgressSearcher interface {
	Search(ctx context.Context, userID, courseID string) ([]models.TrainingProgress, error)
}

type TrainingHandler struct {
	training ProgressTracker
	progress ProgressSearcher
	log      *zap.Logger
}

func NewTrainingHandler(training ProgressTracker, progress ProgressSearcher, log *zap.Logger) *TrainingHandler {
	return &TrainingHandler{training: training, progress: progress, log: log}
}

// GetProgress godoc
// @Summary List training progress
// @Tags Training
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "User ID"
// @Param course_id query string false "Course ID"
// @Success 200 {array} models.TrainingProgress
// @Router /training/progress [get]
func (h *TrainingHandler) GetProgress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	progress, err := h.progress.Search(ctx, c.Query("user_id"), c.Query("course_id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(progress)
}

// UpdateProgress godoc
// @Summary Update a user's progress on a course
// @Description Progress 100 marks the course completed; the first completion awards the course's kudos reward.
// @Tags Training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param payload body models.TrainingProgressPayload true "Progress"
// @Success 200 {object} models.TrainingProgress
// @Failure 404 {object} models.ErrorResponse "Course not found"
// @Router /training/courses/{id}/progress [put]
func (h *TrainingHandler) UpdateProgress(c *fiber.Ctx) error {
	var payload models.TrainingProgressPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	progress, err := h.training.UpdateProgress(ctx, c.Params("id"), payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(progress)
}
