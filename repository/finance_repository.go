package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type FinanceRepository struct {
	*Repository[models.FinanceTransaction]
}

func NewFinanceRepository(db *mongo.Database) *FinanceRepository {
	return &FinanceRepository{Repository: NewRepository[models.FinanceTransaction](db, config.FinanceTransactionCollection)}
}

// All returns every transaction, newest first.
func (r *FinanceRepository) All(ctx context.Context) ([]models.FinanceTransaction, error) {
	return r.List(ctx, bson.M{}, ListOptions{SortBy: "created_at", Desc: true, Limit: 10000})
}

type SalaryRepository struct {
	*Repository[models.SalaryRecord]
}

func NewSalaryRepository(db *mongo.Database) *SalaryRepository {
	return &SalaryRepository{Repository: NewRepository[models.SalaryRecord](db, config.SalaryCollection)}
}

func (r *SalaryRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.Count(ctx, bson.M{"status": status})
}

func (r *SalaryRepository) All(ctx context.Context) ([]models.SalaryRecord, error) {
	return r.List(ctx, bson.M{}, Recent(0))
}
