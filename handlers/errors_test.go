package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ops-backend/repository"
	"ops-backend/services"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("bad range: %w", services.ErrValidation), fiber.StatusBadRequest},
		{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{services.ErrNotCheckedIn, fiber.StatusNotFound},
		{repository.ErrNotFound, fiber.StatusNotFound},
		{services.ErrAlreadyCheckedIn, fiber.StatusConflict},
		{fmt.Errorf("users: %w", repository.ErrDuplicate), fiber.StatusConflict},
		{errors.New("socket closed"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	log := zap.New(core)

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, log, errors.New("connection reset by peer"))
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return respondError(c, log, services.ErrAlreadyCheckedOut)
	})

	resp, body := doJSON(t, app, http.MethodGet, "/boom", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, 1, logs.Len())

	resp, body = doJSON(t, app, http.MethodGet, "/conflict", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "already checked out: conflict", body["error"])
	assert.Equal(t, 1, logs.Len())
}
