package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/models"
)

type FinanceLedger interface {
	Transactions(ctx context.Context) ([]models.FinanceTransaction, error)
	CreateTransaction(ctx context.Context, payload models.FinanceTransactionCreatePayload) (*models.FinanceTransaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Summary(ctx context.Context) (models.FinanceSummary, error)
}

type Payroll interface {
	List(ctx context.Context) ([]models.SalaryRecord, error)
	Create(ctx context.Context, payload models.SalaryCreatePayload) (*models.SalaryRecord, error)
	UpdateStatus(ctx context.Context, id, status, paymentDate string) error
}

type FinanceHandler struct {
	ledger  FinanceLedger
	payroll Payroll
	log     *zap.Logger
}

func NewFinanceHandler(ledger FinanceLedger, payroll Payroll, log *zap.Logger) *FinanceHandler {
	return &FinanceHandler{ledger: ledger, payroll: payroll, log: log}
}

// GetTransactions godoc
// @Summary List finance transactions, newest first
// @Tags Finance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FinanceTransaction
// @Router /finance/transactions [get]
func (h *FinanceHandler) GetTransactions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	txs, err := h.ledger.Transactions(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(txs)
}

// CreateTransaction godoc
// @Summary Record a finance transaction
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.FinanceTransactionCreatePayload true "Transaction"
// @Success 201 {object} models.FinanceTransaction
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /finance/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var payload models.FinanceTransactionCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	tx, err := h.ledger.CreateTransaction(ctx, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// DeleteTransaction godoc
// @Summary Delete a finance transaction
// @Tags Finance
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /finance/transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.ledger.DeleteTransaction(ctx, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.MessageResponse{Message: "Transaction deleted successfully"})
}

// GetSummary godoc
// @Summary Finance summary
// @Description Totals per type, net balance (income - expenses - salary), expenses per category,
// @Description the 10 latest transactions and the number of pending salary payments.
// @Tags Finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FinanceSummary
// @Router /finance/summary [get]
func (h *FinanceHandler) GetSummary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	summary, err := h.ledger.Summary(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// GetSalaries godoc
// @Summary List salary records
// @Tags Finance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SalaryRecord
// @Router /finance/salaries [get]
func (h *FinanceHandler) GetSalaries(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	records, err := h.payroll.List(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(records)
}

// CreateSalary godoc
// @Summary Create a salary record (admin)
// @Description net_salary = base_salary - deductions + bonuses, fixed at creation. Negative values are kept.
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SalaryCreatePayload true "Salary"
// @Success 201 {object} models.SalaryRecord
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /finance/salaries [post]
func (h *FinanceHandler) CreateSalary(c *fiber.Ctx) error {
	var payload models.SalaryCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	record, err := h.payroll.Create(ctx, payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// UpdateSalaryStatus godoc
// @Summary Update salary status (admin)
// @Description Accepts a JSON body or the status/payment_date query parameters.
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary record ID"
// @Param payload body models.SalaryStatusPayload false "Status"
// @Param status query string false "pending or paid"
// @Param payment_date query string false "YYYY-MM-DD"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /finance/salaries/{id} [put]
func (h *FinanceHandler) UpdateSalaryStatus(c *fiber.Ctx) error {
	var payload models.SalaryStatusPayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return respondError(c, h.log, badRequest("Invalid request body", err))
		}
	} else if err := c.QueryParser(&payload); err != nil {
		return respondError(c, h.log, badRequest("Invalid query parameters", err))
	}
	if err := validate(&payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.payroll.UpdateStatus(ctx, c.Params("id"), payload.Status, payload.PaymentDate); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.MessageResponse{Message: "Salary status updated successfully"})
}
