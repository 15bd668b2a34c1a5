package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type MeetingAttendanceRecorder interface {
	RecordAttendance(ctx context.Context, payload models.MeetingAttendancePayload) ([]models.MeetingAttendance, error)
	Attendance(ctx context.Context, meetingID string) ([]models.MeetingAttendance, error)
	QRCode(ctx context.Context, meetingID string) (*models.MeetingQRResponse, error)
}

type MeetingHandler struct {
	meetings MeetingAttendanceRecorder
	log      *zap.Logger
}

func NewMeetingHandler(meetings MeetingAttendanceRecorder, log *zap.Logger) *MeetingHandler {
	return &MeetingHandler{meetings: meetings, log: log}
}

// RecordAttendance godoc
// @Summary Record meeting attendance
// @Description Every invited attendee and every listed user gets a present/absent record. Allowed once per meeting.
// @Tags Meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.MeetingAttendancePayload true "Attendance"
// @Success 201 {array} models.MeetingAttendance
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Attendance already recorded"
// @Router /meetings/attendance [post]
func (h *MeetingHandler) RecordAttendance(c *fiber.Ctx) error {
	var payload models.MeetingAttendancePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	records, err := h.meetings.RecordAttendance(ctx, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(records)
}

func (h *MeetingHandler) GetAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	records, err := h.meetings.Attendance(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(records)
}

// GetQRCode godoc
// @Summary Meeting check-in QR code
// @Tags Meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} models.MeetingQRResponse
// @Router /meetings/{id}/qr [get]
func (h *MeetingHandler) GetQRCode(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	qr, err := h.meetings.QRCode(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(qr)
}
