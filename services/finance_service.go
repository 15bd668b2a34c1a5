package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"ops-backend/models"
)

const recentTransactionsLimit = 10

type TransactionStore interface {
	All(ctx context.Context) ([]models.FinanceTransaction, error)
	Create(ctx context.Context, tx *models.FinanceTransaction) error
	Delete(ctx context.Context, id string) error
}

type SalaryCounter interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type FinanceService struct {
	transactions TransactionStore
	salaries     SalaryCounter
}

func NewFinanceService(transactions TransactionStore, salaries SalaryCounter) *FinanceService {
	return &FinanceService{transactions: transactions, salaries: salaries}
}

func (s *FinanceService) Transactions(ctx context.Context) ([]models.FinanceTransaction, error) {
	return s.transactions.All(ctx)
}

func (s *FinanceService) CreateTransaction(ctx context.Context, payload models.FinanceTransactionCreatePayload) (*models.FinanceTransaction, error) {
	tx := payload.Build()
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, storeErr("finance transaction", err)
	}
	return tx, nil
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, id string) error {
	return storeErr("finance transaction", s.transactions.Delete(ctx, id))
}

func (s *FinanceService) Summary(ctx context.Context) (models.FinanceSummary, error) {
	txs, err := s.transactions.All(ctx)
	if err != nil {
		return models.FinanceSummary{}, err
	}
	pending, err := s.salaries.CountByStatus(ctx, models.SalaryStatusPending)
	if err != nil {
		return models.FinanceSummary{}, err
	}
	return SummarizeTransactions(txs, pending), nil
}

// SummarizeTransactions totals amounts per type. Amounts count as magnitudes; the type decides the
// sign of their contribution to the net balance.
func SummarizeTransactions(txs []models.FinanceTransaction, pendingSalaries int64) models.FinanceSummary {
	income, expenses, salary := decimal.Zero, decimal.Zero, decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount).Abs()
		switch tx.Type {
		case models.TransactionIncome:
			income = income.Add(amount)
		case models.TransactionExpense:
			expenses = expenses.Add(amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(amount)
		case models.TransactionSalary:
			salary = salary.Add(amount)
		}
	}

	expenseByCategory := make(map[string]float64, len(byCategory))
	for category, sum := range byCategory {
		expenseByCategory[category] = sum.InexactFloat64()
	}

	return models.FinanceSummary{
		TotalIncome:           income.InexactFloat64(),
		TotalExpenses:         expenses.InexactFloat64(),
		TotalSalary:           salary.InexactFloat64(),
		NetBalance:            income.Sub(expenses).Sub(salary).InexactFloat64(),
		ExpenseByCategory:     expenseByCategory,
		RecentTransactions:    recentTransactions(txs, recentTransactionsLimit),
		PendingSalaryPayments: pendingSalaries,
	}
}

func recentTransactions(txs []models.FinanceTransaction, n int) []models.FinanceTransaction {
	sorted := make([]models.FinanceTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
