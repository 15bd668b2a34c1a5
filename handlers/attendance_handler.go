package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type AttendanceTracker interface {
	CheckIn(ctx context.Context, userID, userName string) (time.Time, error)
	CheckOut(ctx context.Context, userID, date string) (time.Time, float64, error)
	Records(ctx context.Context, userID, month string) ([]models.AttendanceRecord, error)
	Summary(ctx context.Context, userID string) (models.AttendanceSummary, error)
}

type AttendanceHandler struct {
	attendance AttendanceTracker
	log        *zap.Logger
}

func NewAttendanceHandler(attendance AttendanceTracker, log *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, log: log}
}

// CheckIn godoc
// @Summary Check in for today
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CheckInPayload true "User checking in"
// @Success 200 {object} models.CheckInResult
// @Failure 409 {object} models.ErrorResponse "Already checked in today"
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var payload models.CheckInPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	at, err := h.attendance.CheckIn(ctx, payload.UserID, payload.UserName)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.CheckInResult{Message: "Checked in successfully", CheckInTime: at})
}

// CheckOut godoc
// @Summary Check out
// @Description Closes the record of the given date and stores the worked hours (2 decimals).
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CheckOutPayload true "User and date"
// @Success 200 {object} models.CheckOutResult
// @Failure 404 {object} models.ErrorResponse "No check-in record"
// @Failure 409 {object} models.ErrorResponse "Already checked out"
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var payload models.CheckOutPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	at, hours, err := h.attendance.CheckOut(ctx, payload.UserID, payload.Date)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.CheckOutResult{Message: "Checked out successfully", CheckOutTime: at, TotalHours: hours})
}

// GetRecords godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "User ID"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {array} models.AttendanceRecord
// @Router /attendance/records [get]
func (h *AttendanceHandler) GetRecords(c *fiber.Ctx) error {
	month := c.Query("month")
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return respondError(c, h.log, badRequest("month must use the YYYY-MM format", err))
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	records, err := h.attendance.Records(ctx, c.Query("user_id"), month)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(records)
}

// GetSummary godoc
// @Summary Attendance summary
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "User ID"
// @Success 200 {object} models.AttendanceSummary
// @Router /attendance/summary [get]
func (h *AttendanceHandler) GetSummary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	summary, err := h.attendance.Summary(ctx, c.Query("user_id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}
