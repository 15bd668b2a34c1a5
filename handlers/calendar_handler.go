package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type CalendarScheduler interface {
	Create(ctx context.Context, payload models.CalendarEventCreatePayload) (*models.CalendarEvent, error)
	Occurrences(ctx context.Context, id string, from, to time.Time) ([]models.Occurrence, error)
}

type CalendarHandler struct {
	calendar CalendarScheduler
	log      *zap.Logger
}

func NewCalendarHandler(calendar CalendarScheduler, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, log: log}
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Description The event is stored first and then synced to the external calendar on a best-effort basis.
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body models.CalendarEventCreatePayload true "Event"
// @Success 201 {object} models.CalendarEvent
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *fiber.Ctx) error {
	var payload models.CalendarEventCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	event, err := h.calendar.Create(ctx, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// GetOccurrences godoc
// @Summary Expand an event's recurrence
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param from query string false "RFC3339 start (default now)"
// @Param to query string false "RFC3339 end (default from + 30 days)"
// @Success 200 {array} models.Occurrence
// @Failure 404 {object} models.ErrorResponse
// @Router /calendar/events/{id}/occurrences [get]
func (h *CalendarHandler) GetOccurrences(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return respondError(c, h.log, err)
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	occurrences, err := h.calendar.Occurrences(ctx, c.Params("id"), from, to)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(occurrences)
}

func parseTimeQuery(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, badRequest("query parameter '"+key+"' must be RFC3339", err)
	}
	return t, nil
}
