package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ops-backend/models"
)

type fakeKudosLedger struct {
	limit int64
}

func (f *fakeKudosLedger) Balance(_ context.Context, userID string) (int64, error) {
	if userID == "u1" {
		return 42, nil
	}
	return 0, nil
}

func (f *fakeKudosLedger) Leaderboard(_ context.Context, limit int64) ([]models.KudosLeaderboardEntry, error) {
	f.limit = limit
	return []models.KudosLeaderboardEntry{{UserID: "u1", UserName: "Alice", Total: 42, Transactions: 3}}, nil
}

func TestKudosHandler(t *testing.T) {
	ledger := &fakeKudosLedger{}
	h := NewKudosHandler(ledger, zap.NewNop())
	app := fiber.New()
	app.Get("/kudos/balance/:user_id", h.GetBalance)
	app.Get("/kudos/leaderboard", h.GetLeaderboard)

	resp, body := doJSON(t, app, http.MethodGet, "/kudos/balance/u1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, 42.0, body["balance"])

	_, body = doJSON(t, app, http.MethodGet, "/kudos/balance/nobody", nil)
	assert.Equal(t, 0.0, body["balance"])

	resp, _ = doJSON(t, app, http.MethodGet, "/kudos/leaderboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(10), ledger.limit)
	entries := decodeList(t, resp)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0]["user_name"])

	doJSON(t, app, http.MethodGet, "/kudos/leaderboard?limit=3", nil)
	assert.Equal(t, int64(3), ledger.limit)

	resp, _ = doJSON(t, app, http.MethodGet, "/kudos/leaderboard?limit=500", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
