package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"ops-backend/models"
)

type SalaryStore interface {
	All(ctx context.Context) ([]models.SalaryRecord, error)
	Create(ctx context.Context, record *models.SalaryRecord) error
	Update(ctx context.Context, id string, set bson.M) error
}

type SalaryService struct {
	store SalaryStore
}

func NewSalaryService(store SalaryStore) *SalaryService {
	return &SalaryService{store: store}
}

// NetSalary is base - deductions + bonuses. A negative result is returned as is.
func NetSalary(base, deductions, bonuses float64) float64 {
	return decimal.NewFromFloat(base).
		Sub(decimal.NewFromFloat(deductions)).
		Add(decimal.NewFromFloat(bonuses)).
		InexactFloat64()
}

func (s *SalaryService) List(ctx context.Context) ([]models.SalaryRecord, error) {
	return s.store.All(ctx)
}

// Create stores a pending salary record. The net amount is fixed at creation.
func (s *SalaryService) Create(ctx context.Context, payload models.SalaryCreatePayload) (*models.SalaryRecord, error) {
	record := &models.SalaryRecord{
		UserID:     payload.UserID,
		UserName:   payload.UserName,
		Month:      payload.Month,
		BaseSalary: payload.BaseSalary,
		Deductions: payload.Deductions,
		Bonuses:    payload.Bonuses,
		NetSalary:  NetSalary(payload.BaseSalary, payload.Deductions, payload.Bonuses),
		Status:     models.SalaryStatusPending,
	}
	if err := s.store.Create(ctx, record); err != nil {
		return nil, storeErr("salary record", err)
	}
	return record, nil
}

// UpdateStatus sets the status; the payment date is stored only when paying and one is supplied.
func (s *SalaryService) UpdateStatus(ctx context.Context, id, status, paymentDate string) error {
	set := bson.M{"status": status}
	if status == models.SalaryStatusPaid && paymentDate != "" {
		set["payment_date"] = paymentDate
	}
	return storeErr("salary record", s.store.Update(ctx, id, set))
}
