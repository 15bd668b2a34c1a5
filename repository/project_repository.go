package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ops-backend/config"
	"ops-backend/models"
)

type ProjectRepository struct {
	*Repository[models.Project]
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{Repository: NewRepository[models.Project](db, config.ProjectCollection)}
}

func (r *ProjectRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, bson.M{})
}

func (r *ProjectRepository) CountByMember(ctx context.Context, userID string) (int64, error) {
	return r.Count(ctx, bson.M{"assigned_members": userID})
}

func (r *ProjectRepository) Recent(ctx context.Context, limit int64) ([]models.Project, error) {
	return r.List(ctx, bson.M{}, Recent(limit))
}

type TaskRepository struct {
	*Repository[models.Task]
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{Repository: NewRepository[models.Task](db, config.TaskCollection)}
}

func (r *TaskRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, bson.M{})
}

// CountByAssignee counts open (not done) or completed tasks of one user.
func (r *TaskRepository) CountByAssignee(ctx context.Context, userID string, done bool) (int64, error) {
	return r.Count(ctx, assigneeFilter(userID, done))
}

func (r *TaskRepository) FindOpenByAssignee(ctx context.Context, userID string, limit int64) ([]models.Task, error) {
	return r.List(ctx, assigneeFilter(userID, false), Recent(limit))
}

func (r *TaskRepository) Recent(ctx context.Context, limit int64) ([]models.Task, error) {
	return r.List(ctx, bson.M{}, Recent(limit))
}

func assigneeFilter(userID string, done bool) bson.M {
	if done {
		return bson.M{"assigned_to": userID, "status": models.StatusDone}
	}
	return bson.M{"assigned_to": userID, "status": bson.M{"$ne": models.StatusDone}}
}
