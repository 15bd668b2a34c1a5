package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Repository: NewRepository[models.User](db, config.UserCollection)}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.FindOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	return r.List(ctx, bson.M{"_id": bson.M{"$in": ids}}, ListOptions{})
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, bson.M{})
}
