package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
	TransactionSalary  = "salary"
)

type FinanceTransaction struct {
	ID            string    `json:"id" bson:"_id"`
	Type          string    `json:"type" bson:"type"`
	Category      string    `json:"category" bson:"category"`
	Amount        float64   `json:"amount" bson:"amount"`
	Description   string    `json:"description" bson:"description"`
	Date          string    `json:"date" bson:"date"`
	PaymentMethod string    `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	ReceiptURL    string    `json:"receipt_url,omitempty" bson:"receipt_url,omitempty"`
	PaidTo        string    `json:"paid_to,omitempty" bson:"paid_to,omitempty"`
	Status        string    `json:"status" bson:"status"`
	CreatedBy     string    `json:"created_by" bson:"created_by"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func (f *FinanceTransaction) SetMeta(id string, now time.Time) {
	f.ID = id
	f.CreatedAt = now
}

type FinanceTransactionCreatePayload struct {
	Type          string  `json:"type" validate:"required,oneof=income expense salary"`
	Category      string  `json:"category" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Description   string  `json:"description" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method"`
	ReceiptURL    string  `json:"receipt_url" validate:"omitempty,uri"`
	PaidTo        string  `json:"paid_to"`
	CreatedBy     string  `json:"created_by" validate:"required"`
}

func (p FinanceTransactionCreatePayload) Build() *FinanceTransaction {
	return &FinanceTransaction{
		Type:          p.Type,
		Category:      p.Category,
		Amount:        p.Amount,
		Description:   p.Description,
		Date:          p.Date,
		PaymentMethod: p.PaymentMethod,
		ReceiptURL:    p.ReceiptURL,
		PaidTo:        p.PaidTo,
		Status:        "completed",
		CreatedBy:     p.CreatedBy,
	}
}

type FinanceSummary struct {
	TotalIncome           float64              `json:"total_income"`
	TotalExpenses         float64              `json:"total_expenses"`
	TotalSalary           float64              `json:"total_salary"`
	NetBalance            float64              `json:"net_balance"`
	ExpenseByCategory     map[string]float64   `json:"expense_by_category"`
	RecentTransactions    []FinanceTransaction `json:"recent_transactions"`
	PendingSalaryPayments int64                `json:"pending_salary_payments"`
}
