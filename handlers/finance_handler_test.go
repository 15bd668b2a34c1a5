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
	"ops-backend/services"
)

type fakePayroll struct {
	id, status, paymentDate string
}

func (f *fakePayroll) List(context.Context) ([]models.SalaryRecord, error) {
	return []models.SalaryRecord{}, nil
}

func (f *fakePayroll) Create(_ context.Context, p models.SalaryCreatePayload) (*models.SalaryRecord, error) {
	return &models.SalaryRecord{ID: "s1", UserID: p.UserID, NetSalary: services.NetSalary(p.BaseSalary, p.Deductions, p.Bonuses)}, nil
}

func (f *fakePayroll) UpdateStatus(_ context.Context, id, status, paymentDate string) error {
	if id == "missing" {
		return services.ErrNotFound
	}
	f.id, f.status, f.paymentDate = id, status, paymentDate
	return nil
}

func TestFinanceHandler_UpdateSalaryStatus(t *testing.T) {
	payroll := &fakePayroll{}
	h := NewFinanceHandler(nil, payroll, zap.NewNop())
	app := fiber.New()
	app.Put("/finance/salaries/:id", h.UpdateSalaryStatus)

	resp, _ := doJSON(t, app, http.MethodPut, "/finance/salaries/s1", map[string]string{"status": "paid", "payment_date": "2024-05-31"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "s1", payroll.id)
	assert.Equal(t, "paid", payroll.status)
	assert.Equal(t, "2024-05-31", payroll.paymentDate)

	resp, _ = doJSON(t, app, http.MethodPut, "/finance/salaries/s2?status=pending", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "s2", payroll.id)
	assert.Equal(t, "pending", payroll.status)

	resp, _ = doJSON(t, app, http.MethodPut, "/finance/salaries/s3?status=cancelled", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/finance/salaries/missing?status=paid", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFinanceHandler_CreateSalary(t *testing.T) {
	h := NewFinanceHandler(nil, &fakePayroll{}, zap.NewNop())
	app := fiber.New()
	app.Post("/finance/salaries", h.CreateSalary)

	resp, body := doJSON(t, app, http.MethodPost, "/finance/salaries", map[string]interface{}{
		"user_id": "u1", "user_name": "Alice", "month": "2024-05", "base_salary": 1000, "deductions": 1500, "bonuses": 0,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, -500.0, body["net_salary"])

	resp, _ = doJSON(t, app, http.MethodPost, "/finance/salaries", map[string]interface{}{
		"user_id": "u1", "user_name": "Alice", "month": "May 2024", "base_salary": 1000,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
