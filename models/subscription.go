package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Subscription keeps the account password sealed; it is only revealed through the credentials endpoint.
type Subscription struct {
	ID             string    `json:"id" bson:"_id"`
	Platform       string    `json:"platform" bson:"platform"`
	Username       string    `json:"username,omitempty" bson:"username,omitempty"`
	SealedPassword string    `json:"-" bson:"sealed_password,omitempty"`
	HasPassword    bool      `json:"has_password" bson:"-"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	RenewalDate    string    `json:"renewal_date,omitempty" bson:"renewal_date,omitempty"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

func (s *Subscription) SetMeta(id string, now time.Time) {
	s.ID = id
	s.CreatedAt = now
}

type SubscriptionCreatePayload struct {
	Platform    string `json:"platform" validate:"required,max=200"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsActive    *bool  `json:"is_active"`
	RenewalDate string `json:"renewal_date" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes"`
}

type SubscriptionUpdatePayload struct {
	Platform    *string `json:"platform" validate:"omitempty,max=200"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	RenewalDate *string `json:"renewal_date" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes"`
}

// Changes excludes the password, which must be sealed by the caller.
func (p SubscriptionUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "platform", p.Platform)
	setIf(set, "username", p.Username)
	setIf(set, "is_active", p.IsActive)
	setIf(set, "renewal_date", p.RenewalDate)
	setIf(set, "notes", p.Notes)
	return set
}

type SubscriptionCredentials struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	Password string `json:"password"`
}
