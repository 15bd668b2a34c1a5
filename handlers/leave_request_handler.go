package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
	"ops-backend/repository"
)

type LeaveRequestHandler struct {
	leaveRepo repository.LeaveRequestRepository
	log       *zap.Logger
}

func NewLeaveRequestHandler(leaveRepo repository.LeaveRequestRepository, log *zap.Logger) *LeaveRequestHandler {
	return &LeaveRequestHandler{leaveRepo: leaveRepo, log: log}
}

func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	req := payload.Build()
	if err := h.leaveRepo.Create(ctx, req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	requests, err := h.leaveRepo.FindAll(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(requests)
}

// UpdateLeaveRequestStatus reads the status from the body, or from ?status= when the body is empty.
func (h *LeaveRequestHandler) UpdateLeaveRequestStatus(c *fiber.Ctx) error {
	var payload models.LeaveRequestStatusPayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return respondError(c, h.log, badRequest("Invalid request body", err))
		}
	} else {
		payload.Status = c.Query("status")
	}
	if err := validate(&payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.leaveRepo.UpdateStatus(ctx, c.Params("id"), payload.Status); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.MessageResponse{Message: "Leave request status updated successfully"})
}
