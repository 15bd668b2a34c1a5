package models

import "time"

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
	AttendanceHalfDay = "half_day"
)

// DateLayout is the day-granularity key of an attendance record.
const DateLayout = "2006-01-02"

type AttendanceRecord struct {
	ID         string     `json:"id" bson:"_id"`
	UserID     string     `json:"user_id" bson:"user_id"`
	UserName   string     `json:"user_name" bson:"user_name"`
	Date       string     `json:"date" bson:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty" bson:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty" bson:"check_out,omitempty"`
	TotalHours *float64   `json:"total_hours,omitempty" bson:"total_hours,omitempty"`
	Status     string     `json:"status" bson:"status"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
}

func (a *AttendanceRecord) SetMeta(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
}

type CheckInPayload struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
}

type CheckOutPayload struct {
	UserID string `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

type CheckInResult struct {
	Message     string    `json:"message"`
	CheckInTime time.Time `json:"check_in_time"`
}

type CheckOutResult struct {
	Message      string    `json:"message"`
	CheckOutTime time.Time `json:"check_out_time"`
	TotalHours   float64   `json:"total_hours"`
}

type AttendanceSummary struct {
	TotalDays          int     `json:"total_days"`
	PresentDays        int     `json:"present_days"`
	AbsentDays         int     `json:"absent_days"`
	LeaveDays          int     `json:"leave_days"`
	TotalHoursWorked   float64 `json:"total_hours_worked"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}
