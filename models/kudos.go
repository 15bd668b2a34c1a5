package models

import "time"

const (
	KudosTaskCompletion     = "task_completion"
	KudosMeetingAttendance  = "meeting_attendance"
	KudosTrainingCompletion = "training_completion"
	KudosManual             = "manual"
)

// KudosTransaction amounts may be negative.
type KudosTransaction struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Amount    int       `json:"amount" bson:"amount"`
	Reason    string    `json:"reason" bson:"reason"`
	Category  string    `json:"category" bson:"category"`
	GivenBy   string    `json:"given_by" bson:"given_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (k *KudosTransaction) SetMeta(id string, now time.Time) {
	k.ID = id
	k.CreatedAt = now
}

type KudosTransactionCreatePayload struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Amount   int    `json:"amount" validate:"ne=0"`
	Reason   string `json:"reason" validate:"required,max=500"`
	Category string `json:"category" validate:"required,oneof=task_completion meeting_attendance training_completion manual"`
	GivenBy  string `json:"given_by" validate:"required"`
}

func (p KudosTransactionCreatePayload) Build() *KudosTransaction {
	return &KudosTransaction{
		UserID:   p.UserID,
		UserName: p.UserName,
		Amount:   p.Amount,
		Reason:   p.Reason,
		Category: p.Category,
		GivenBy:  p.GivenBy,
	}
}

type KudosBalance struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type KudosLeaderboardEntry struct {
	UserID       string `json:"user_id" bson:"_id"`
	UserName     string `json:"user_name" bson:"user_name"`
	Total        int64  `json:"total" bson:"total"`
	Transactions int64  `json:"transactions" bson:"transactions"`
}
