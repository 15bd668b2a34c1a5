package models

import "time"

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	UserName   string    `json:"user_name" bson:"user_name"`
	StartDate  string    `json:"start_date" bson:"start_date"`
	EndDate    string    `json:"end_date" bson:"end_date"`
	Reason     string    `json:"reason" bson:"reason"`
	Status     string    `json:"status" bson:"status"`
	DelegateTo string    `json:"delegate_to,omitempty" bson:"delegate_to,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

func (l *LeaveRequest) SetMeta(id string, now time.Time) {
	l.ID = id
	l.CreatedAt = now
}

type LeaveRequestCreatePayload struct {
	UserID     string `json:"user_id" validate:"required"`
	UserName   string `json:"user_name" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required,max=500"`
	DelegateTo string `json:"delegate_to"`
}

func (p LeaveRequestCreatePayload) Build() *LeaveRequest {
	return &LeaveRequest{
		UserID:     p.UserID,
		UserName:   p.UserName,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Reason:     p.Reason,
		Status:     LeaveStatusPending,
		DelegateTo: p.DelegateTo,
	}
}

type LeaveRequestStatusPayload struct {
	Status string `json:"status" query:"status" validate:"required,oneof=pending approved rejected"`
}
