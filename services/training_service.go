package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"ops-backend/models"
	"ops-backend/repository"
)

type CourseFinder interface {
	FindByID(ctx context.Context, id string) (*models.TrainingCourse, error)
}

type ProgressStore interface {
	FindByCourseAndUser(ctx context.Context, courseID, userID string) (*models.TrainingProgress, error)
	Create(ctx context.Context, progress *models.TrainingProgress) error
	Update(ctx context.Context, id string, set bson.M) error
}

type KudosWriter interface {
	Create(ctx context.Context, tx *models.KudosTransaction) error
}

type TrainingService struct {
	courses  CourseFinder
	progress ProgressStore
	kudos    KudosWriter
	clock    Clock
	log      *zap.Logger
}

func NewTrainingService(courses CourseFinder, progress ProgressStore, kudos KudosWriter, clock Clock, log *zap.Logger) *TrainingService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TrainingService{courses: courses, progress: progress, kudos: kudos, clock: clock, log: log}
}

// UpdateProgress upserts the user's progress on a course. Reaching 100 for the first time awards
// the course's kudos reward.
func (s *TrainingService) UpdateProgress(ctx context.Context, courseID string, payload models.TrainingProgressPayload) (*models.TrainingProgress, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, storeErr("training course", err)
	}

	now := s.clock.Now()
	completed := payload.Progress == 100

	progress, err := s.progress.FindByCourseAndUser(ctx, courseID, payload.UserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		progress = &models.TrainingProgress{
			CourseID: courseID,
			UserID:   payload.UserID,
		}
		applyProgress(progress, payload, now)
		if err := s.progress.Create(ctx, progress); err != nil {
			return nil, storeErr("training progress", err)
		}
	case err != nil:
		return nil, err
	default:
		firstCompletion := completed && progress.CompletedAt == nil
		applyProgress(progress, payload, now)
		set := bson.M{
			"user_name":          progress.UserName,
			"progress":           progress.Progress,
			"completed":          progress.Completed,
			"homework_submitted": progress.HomeworkSubmitted,
			"homework_url":       progress.HomeworkURL,
			"updated_at":         now,
		}
		if firstCompletion {
			set["completed_at"] = now
		}
		if err := s.progress.Update(ctx, progress.ID, set); err != nil {
			return nil, storeErr("training progress", err)
		}
		if !firstCompletion {
			return progress, nil
		}
	}

	if completed && course.KudosReward > 0 {
		s.award(ctx, course, progress)
	}
	return progress, nil
}

func applyProgress(p *models.TrainingProgress, payload models.TrainingProgressPayload, now time.Time) {
	p.UserName = payload.UserName
	p.Progress = payload.Progress
	p.Completed = payload.Progress == 100
	if payload.HomeworkSubmitted != nil {
		p.HomeworkSubmitted = *payload.HomeworkSubmitted
	}
	if payload.HomeworkURL != nil {
		p.HomeworkURL = *payload.HomeworkURL
	}
	if p.Completed && p.CompletedAt == nil {
		p.CompletedAt = &now
	}
	p.UpdatedAt = now
}

func (s *TrainingService) award(ctx context.Context, course *models.TrainingCourse, p *models.TrainingProgress) {
	tx := &models.KudosTransaction{
		UserID:   p.UserID,
		UserName: p.UserName,
		Amount:   course.KudosReward,
		Reason:   "Completed training: " + course.Title,
		Category: models.KudosTrainingCompletion,
		GivenBy:  "system",
	}
	if err := s.kudos.Create(ctx, tx); err != nil {
		s.log.Error("failed to award training kudos",
			zap.String("course_id", course.ID),
			zap.String("user_id", p.UserID),
			zap.Error(err),
		)
	}
}
