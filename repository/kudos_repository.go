package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type KudosRepository struct {
	*Repository[models.KudosTransaction]
}

func NewKudosRepository(db *mongo.Database) *KudosRepository {
	return &KudosRepository{Repository: NewRepository[models.KudosTransaction](db, config.KudosCollection)}
}

// Balance sums every transaction amount of the user; 0 when there are none.
func (r *KudosRepository) Balance(ctx context.Context, userID string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{"_id": "$user_id", "total": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate kudos balance: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode kudos balance: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *KudosRepository) Leaderboard(ctx context.Context, limit int64) ([]models.KudosLeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$user_id",
			"user_name":    bson.M{"$first": "$user_name"},
			"total":        bson.M{"$sum": "$amount"},
			"transactions": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate kudos leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.KudosLeaderboardEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode kudos leaderboard: %w", err)
	}
	return entries, nil
}
