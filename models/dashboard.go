package models

// DashboardStats is computed per request and never stored.
type DashboardStats struct {
	TotalProjects int64 `json:"total_projects"`
	TotalTasks    int64 `json:"total_tasks"`
	TotalMembers  int64 `json:"total_members"`
	PendingLeaves int64 `json:"pending_leaves"`

	*UserDashboardStats

	RecentProjects []Project `json:"recent_projects"`
	RecentTasks    []Task    `json:"recent_tasks"`
}

// UserDashboardStats is only present when the dashboard is requested for a user.
type UserDashboardStats struct {
	MyTasks          int64  `json:"my_tasks"`
	MyTasksCompleted int64  `json:"my_tasks_completed"`
	MyProjects       int64  `json:"my_projects"`
	AssignedTasks    []Task `json:"assigned_tasks"`
}
