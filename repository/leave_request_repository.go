package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) error
	FindAll(ctx context.Context) ([]models.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type leaveRequestRepository struct {
	store *Repository[models.LeaveRequest]
}

func NewLeaveRequestRepository(db *mongo.Database) LeaveRequestRepository {
	return &leaveRequestRepository{
		store: NewRepository[models.LeaveRequest](db, config.LeaveRequestCollection),
	}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) error {
	return r.store.Create(ctx, req)
}

func (r *leaveRequestRepository) FindAll(ctx context.Context) ([]models.LeaveRequest, error) {
	return r.store.List(ctx, bson.M{}, Recent(0))
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.store.Update(ctx, id, bson.M{"status": status})
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.store.Count(ctx, bson.M{"status": status})
}
