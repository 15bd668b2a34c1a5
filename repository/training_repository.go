package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type TrainingProgressRepository struct {
	*Repository[models.TrainingProgress]
}

func NewTrainingProgressRepository(db *mongo.Database) *TrainingProgressRepository {
	return &TrainingProgressRepository{
		Repository: NewRepository[models.TrainingProgress](db, config.TrainingProgressCollection),
	}
}

func (r *TrainingProgressRepository) FindByCourseAndUser(ctx context.Context, courseID, userID string) (*models.TrainingProgress, error) {
	return r.FindOne(ctx, bson.M{"course_id": courseID, "user_id": userID})
}

func (r *TrainingProgressRepository) Search(ctx context.Context, userID, courseID string) ([]models.TrainingProgress, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if courseID != "" {
		filter["course_id"] = courseID
	}
	return r.List(ctx, filter, Recent(0))
}
