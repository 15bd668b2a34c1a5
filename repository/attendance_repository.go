package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	FindByUserAndDate(ctx context.Context, userID, date string) (*models.AttendanceRecord, error)
	SetCheckIn(ctx context.Context, id string, at time.Time) error
	SetCheckOut(ctx context.Context, id string, at time.Time, hours float64) error
	// FindRecords filters by user and by month ("2006-01"); empty values match everything.
	FindRecords(ctx context.Context, userID, month string) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	store *Repository[models.AttendanceRecord]
}

func NewAttendanceRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceRepository{
		store: NewRepository[models.AttendanceRecord](db, config.AttendanceCollection),
	}
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	return r.store.Create(ctx, record)
}

func (r *attendanceRepository) FindByUserAndDate(ctx context.Context, userID, date string) (*models.AttendanceRecord, error) {
	return r.store.FindOne(ctx, bson.M{"user_id": userID, "date": date})
}

func (r *attendanceRepository) SetCheckIn(ctx context.Context, id string, at time.Time) error {
	return r.store.Update(ctx, id, bson.M{"check_in": at, "status": models.AttendancePresent})
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, at time.Time, hours float64) error {
	return r.store.Update(ctx, id, bson.M{"check_out": at, "total_hours": hours})
}

func (r *attendanceRepository) FindRecords(ctx context.Context, userID, month string) ([]models.AttendanceRecord, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if month != "" {
		filter["date"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(month)}
	}
	return r.store.List(ctx, filter, ListOptions{SortBy: "date", Desc: true, Limit: 10000})
}
