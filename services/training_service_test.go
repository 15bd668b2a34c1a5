package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ops-backend/models"
	"ops-backend/repository"
)

type fakeCourses map[string]*models.TrainingCourse

func (f fakeCourses) FindByID(_ context.Context, id string) (*models.TrainingCourse, error) {
	c, ok := f[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

type fakeProgressStore struct {
	records map[string]*models.TrainingProgress
}

func (f *fakeProgressStore) FindByCourseAndUser(_ context.Context, courseID, userID string) (*models.TrainingProgress, error) {
	p, ok := f.records[courseID+"/"+userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (f *fakeProgressStore) Create(_ context.Context, p *models.TrainingProgress) error {
	p.SetMeta("prog-"+p.UserID, time.Now())
	copy := *p
	f.records[p.CourseID+"/"+p.UserID] = &copy
	return nil
}

func (f *fakeProgressStore) Update(_ context.Context, id string, set bson.M) error {
	for _, p := range f.records {
		if p.ID != id {
			continue
		}
		p.Progress = set["progress"].(int)
		p.Completed = set["completed"].(bool)
		if at, ok := set["completed_at"].(time.Time); ok {
			p.CompletedAt = &at
		}
		return nil
	}
	return repository.ErrNotFound
}

type fakeKudosWriter struct {
	txs []models.KudosTransaction
	err error
}

func (f *fakeKudosWriter) Create(_ context.Context, tx *models.KudosTransaction) error {
	if f.err != nil {
		return f.err
	}
	f.txs = append(f.txs, *tx)
	return nil
}

func newTrainingFixture(reward int) (*TrainingService, *fakeProgressStore, *fakeKudosWriter) {
	courses := fakeCourses{"c1": {ID: "c1", Title: "Go basics", KudosReward: reward}}
	progress := &fakeProgressStore{records: map[string]*models.TrainingProgress{}}
	kudos := &fakeKudosWriter{}
	clock := &stubClock{now: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)}
	return NewTrainingService(courses, progress, kudos, clock, zap.NewNop()), progress, kudos
}

func TestTrainingProgress_KudosAwardedOnce(t *testing.T) {
	ctx := context.Background()
	svc, progress, kudos := newTrainingFixture(50)

	p, err := svc.UpdateProgress(ctx, "c1", models.TrainingProgressPayload{UserID: "u1", UserName: "Alice", Progress: 40})
	require.NoError(t, err)
	assert.False(t, p.Completed)
	assert.Empty(t, kudos.txs)

	p, err = svc.UpdateProgress(ctx, "c1", models.TrainingProgressPayload{UserID: "u1", UserName: "Alice", Progress: 100})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	require.Len(t, kudos.txs, 1)
	assert.Equal(t, 50, kudos.txs[0].Amount)
	assert.Equal(t, models.KudosTrainingCompletion, kudos.txs[0].Category)
	assert.Equal(t, "system", kudos.txs[0].GivenBy)
	assert.NotNil(t, progress.records["c1/u1"].CompletedAt)

	_, err = svc.UpdateProgress(ctx, "c1", models.TrainingProgressPayload{UserID: "u1", UserName: "Alice", Progress: 100})
	require.NoError(t, err)
	assert.Len(t, kudos.txs, 1)
}

func TestTrainingProgress_CompletedOnCreate(t *testing.T) {
	svc, _, kudos := newTrainingFixture(10)

	p, err := svc.UpdateProgress(context.Background(), "c1", models.TrainingProgressPayload{UserID: "u2", UserName: "Bob", Progress: 100})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.Len(t, kudos.txs, 1)
}

func TestTrainingProgress_NoRewardNoKudos(t *testing.T) {
	svc, _, kudos := newTrainingFixture(0)

	_, err := svc.UpdateProgress(context.Background(), "c1", models.TrainingProgressPayload{UserID: "u1", Progress: 100})
	require.NoError(t, err)
	assert.Empty(t, kudos.txs)
}

func TestTrainingProgress_KudosFailureDoesNotFail(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	courses := fakeCourses{"c1": {ID: "c1", KudosReward: 5}}
	progress := &fakeProgressStore{records: map[string]*models.TrainingProgress{}}
	kudos := &fakeKudosWriter{err: errors.New("write failed")}
	svc := NewTrainingService(courses, progress, kudos, nil, zap.New(core))

	_, err := svc.UpdateProgress(context.Background(), "c1", models.TrainingProgressPayload{UserID: "u1", Progress: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}

func TestTrainingProgress_UnknownCourse(t *testing.T) {
	svc, _, _ := newTrainingFixture(0)

	_, err := svc.UpdateProgress(context.Background(), "nope", models.TrainingProgressPayload{UserID: "u1", Progress: 10})
	assert.ErrorIs(t, err, ErrNotFound)
}
