package models

import "time"

const (
	SalaryStatusPending = "pending"
	SalaryStatusPaid    = "paid"
)

type SalaryRecord struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	UserName    string    `json:"user_name" bson:"user_name"`
	Month       string    `json:"month" bson:"month"`
	BaseSalary  float64   `json:"base_salary" bson:"base_salary"`
	Deductions  float64   `json:"deductions" bson:"deductions"`
	Bonuses     float64   `json:"bonuses" bson:"bonuses"`
	NetSalary   float64   `json:"net_salary" bson:"net_salary"`
	Status      string    `json:"status" bson:"status"`
	PaymentDate string    `json:"payment_date,omitempty" bson:"payment_date,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func (s *SalaryRecord) SetMeta(id string, now time.Time) {
	s.ID = id
	s.CreatedAt = now
}

type SalaryCreatePayload struct {
	UserID     string  `json:"user_id" validate:"required"`
	UserName   string  `json:"user_name" validate:"required"`
	Month      string  `json:"month" validate:"required,datetime=2006-01"`
	BaseSalary float64 `json:"base_salary" validate:"gte=0"`
	Deductions float64 `json:"deductions" validate:"gte=0"`
	Bonuses    float64 `json:"bonuses" validate:"gte=0"`
}

// SalaryStatusPayload is read from the JSON body or, when the body is empty, from the query string.
type SalaryStatusPayload struct {
	Status      string `json:"status" query:"status" validate:"required,oneof=pending paid"`
	PaymentDate string `json:"payment_date" query:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}
