package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type CalendarEvent struct {
	ID              string    `json:"id" bson:"_id"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	StartTime       time.Time `json:"start_time" bson:"start_time"`
	EndTime         time.Time `json:"end_time" bson:"end_time"`
	EventType       string    `json:"event_type" bson:"event_type"`
	Attendees       []string  `json:"attendees" bson:"attendees"`
	RecurrenceRule  string    `json:"recurrence_rule,omitempty" bson:"recurrence_rule,omitempty"`
	ExternalEventID string    `json:"google_event_id,omitempty" bson:"google_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

func (e *CalendarEvent) SetMeta(id string, now time.Time) {
	e.ID = id
	e.CreatedAt = now
}

type CalendarEventCreatePayload struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	EventType      string    `json:"event_type" validate:"required,oneof=startup content academy personal"`
	Attendees      []string  `json:"attendees"`
	RecurrenceRule string    `json:"recurrence_rule" validate:"omitempty,rrule"`
}

func (p CalendarEventCreatePayload) Build() *CalendarEvent {
	return &CalendarEvent{
		Title:          p.Title,
		Description:    p.Description,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		EventType:      p.EventType,
		Attendees:      nonNil(p.Attendees),
		RecurrenceRule: p.RecurrenceRule,
	}
}

type CalendarEventUpdatePayload struct {
	Title          *string    `json:"title" validate:"omitempty,max=200"`
	Description    *string    `json:"description"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	EventType      *string    `json:"event_type" validate:"omitempty,oneof=startup content academy personal"`
	Attendees      *[]string  `json:"attendees"`
	RecurrenceRule *string    `json:"recurrence_rule" validate:"omitempty,rrule"`
}

func (p CalendarEventUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "description", p.Description)
	setIf(set, "start_time", p.StartTime)
	setIf(set, "end_time", p.EndTime)
	setIf(set, "event_type", p.EventType)
	setIf(set, "attendees", p.Attendees)
	setIf(set, "recurrence_rule", p.RecurrenceRule)
	return set
}

// Occurrence is one concrete instance of a (possibly recurring) event.
type Occurrence struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
