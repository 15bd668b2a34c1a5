package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
	util "ops-backend/pkg/utils"
	"ops-backend/repository"
	"ops-backend/services"
)

const requestTimeout = 10 * time.Second

// requestError is a client error produced while reading the request.
type requestError struct {
	status int
	body   fiber.Map
}

func (e *requestError) Error() string {
	if msg, ok := e.body["error"].(string); ok {
		return msg
	}
	return "invalid request"
}

func badRequest(msg string, details error) error {
	body := fiber.Map{"error": msg}
	if details != nil {
		body["details"] = details.Error()
	}
	return &requestError{status: fiber.StatusBadRequest, body: body}
}

func forbidden(msg string) error {
	return &requestError{status: fiber.StatusForbidden, body: fiber.Map{"error": msg}}
}

// parseBody decodes the JSON body into out and validates it.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest("Invalid request body", err)
	}
	return validate(out)
}

func validate(v interface{}) error {
	if errs := util.ValidateStruct(v); errs != nil {
		return &requestError{status: fiber.StatusBadRequest, body: fiber.Map{"errors": errs}}
	}
	return nil
}

// respondError maps an error to its HTTP status. Unknown errors are logged and hidden behind a 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return c.Status(reqErr.status).JSON(reqErr.body)
	}

	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(status).JSON(models.ErrorResponse{Error: "Internal server error"})
	}
	return c.Status(status).JSON(models.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, repository.ErrDuplicate):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
