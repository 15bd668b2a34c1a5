package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-backend/models"
)

type fakeProjectStats struct {
	total, member int64
	recent        []models.Project
}

func (f fakeProjectStats) CountAll(context.Context) (int64, error) { return f.total, nil }
func (f fakeProjectStats) CountByMember(context.Context, string) (int64, error) { return f.member, nil }
func (f fakeProjectStats) Recent(_ context.Context, limit int64) ([]models.Project, error) {
	if int64(len(f.recent)) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeTaskStats struct {
	total, open, done int64
	assigned          []models.Task
	err               error
}

func (f fakeTaskStats) CountAll(context.Context) (int64, error) { return f.total, f.err }
func (f fakeTaskStats) CountByAssignee(_ context.Context, _ string, done bool) (int64, error) {
	if done {
		return f.done, nil
	}
	return f.open, nil
}
func (f fakeTaskStats) FindOpenByAssignee(context.Context, string, int64) ([]models.Task, error) {
	return f.assigned, nil
}
func (f fakeTaskStats) Recent(context.Context, int64) ([]models.Task, error) { return nil, nil }

type fakeCounter int64

func (f fakeCounter) CountAll(context.Context) (int64, error) { return int64(f), nil }
func (f fakeCounter) CountByStatus(context.Context, string) (int64, error) { return int64(f), nil }

func TestDashboardStats(t *testing.T) {
	projects := fakeProjectStats{total: 7, member: 2, recent: make([]models.Project, 8)}
	tasks := fakeTaskStats{total: 30, open: 4, done: 9, assigned: []models.Task{{ID: "t1"}}}
	svc := NewDashboardService(projects, tasks, fakeCounter(12), fakeCounter(3))

	t.Run("global", func(t *testing.T) {
		stats, err := svc.Stats(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, int64(7), stats.TotalProjects)
		assert.Equal(t, int64(30), stats.TotalTasks)
		assert.Equal(t, int64(12), stats.TotalMembers)
		assert.Equal(t, int64(3), stats.PendingLeaves)
		assert.Len(t, stats.RecentProjects, 5)
		assert.Nil(t, stats.UserDashboardStats)
	})

	t.Run("with user", func(t *testing.T) {
		stats, err := svc.Stats(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, stats.UserDashboardStats)
		assert.Equal(t, int64(4), stats.MyTasks)
		assert.Equal(t, int64(9), stats.MyTasksCompleted)
		assert.Equal(t, int64(2), stats.MyProjects)
		assert.Len(t, stats.AssignedTasks, 1)
	})
}

func TestDashboardStats_StoreError(t *testing.T) {
	svc := NewDashboardService(fakeProjectStats{}, fakeTaskStats{err: errors.New("down")}, fakeCounter(0), fakeCounter(0))

	_, err := svc.Stats(context.Background(), "")
	assert.Error(t, err)
}
