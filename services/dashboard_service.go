package services

import (
	"context"
	"fmt"

	"ops-backend/models"
)

const (
	dashboardRecentLimit   = 5
	dashboardAssignedLimit = 10
)

type ProjectStats interface {
	CountAll(ctx context.Context) (int64, error)
	CountByMember(ctx context.Context, userID string) (int64, error)
	Recent(ctx context.Context, limit int64) ([]models.Project, error)
}

type TaskStats interface {
	CountAll(ctx context.Context) (int64, error)
	CountByAssignee(ctx context.Context, userID string, done bool) (int64, error)
	FindOpenByAssignee(ctx context.Context, userID string, limit int64) ([]models.Task, error)
	Recent(ctx context.Context, limit int64) ([]models.Task, error)
}

type MemberCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type LeaveCounter interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// DashboardService composes live counts on every call. The sub-queries are not isolated from
// each other, so counts may reflect slightly different instants.
type DashboardService struct {
	projects ProjectStats
	tasks    TaskStats
	members  MemberCounter
	leaves   LeaveCounter
}

func NewDashboardService(projects ProjectStats, tasks TaskStats, members MemberCounter, leaves LeaveCounter) *DashboardService {
	return &DashboardService{projects: projects, tasks: tasks, members: members, leaves: leaves}
}

// Stats returns global counts and recent activity, plus the user's own figures when userID is set.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)

	if stats.TotalProjects, err = s.projects.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if stats.TotalTasks, err = s.tasks.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if stats.TotalMembers, err = s.members.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	if stats.PendingLeaves, err = s.leaves.CountByStatus(ctx, models.LeaveStatusPending); err != nil {
		return nil, fmt.Errorf("count pending leaves: %w", err)
	}

	if userID != "" {
		if stats.UserDashboardStats, err = s.userStats(ctx, userID); err != nil {
			return nil, err
		}
	}

	if stats.RecentProjects, err = s.projects.Recent(ctx, dashboardRecentLimit); err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}
	if stats.RecentTasks, err = s.tasks.Recent(ctx, dashboardRecentLimit); err != nil {
		return nil, fmt.Errorf("recent tasks: %w", err)
	}
	return &stats, nil
}

func (s *DashboardService) userStats(ctx context.Context, userID string) (*models.UserDashboardStats, error) {
	var (
		us  models.UserDashboardStats
		err error
	)
	if us.MyTasks, err = s.tasks.CountByAssignee(ctx, userID, false); err != nil {
		return nil, fmt.Errorf("count open tasks: %w", err)
	}
	if us.MyTasksCompleted, err = s.tasks.CountByAssignee(ctx, userID, true); err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}
	if us.MyProjects, err = s.projects.CountByMember(ctx, userID); err != nil {
		return nil, fmt.Errorf("count projects of member: %w", err)
	}
	if us.AssignedTasks, err = s.tasks.FindOpenByAssignee(ctx, userID, dashboardAssignedLimit); err != nil {
		return nil, fmt.Errorf("assigned tasks: %w", err)
	}
	return &us, nil
}
