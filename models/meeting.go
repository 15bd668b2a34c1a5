package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Meeting struct {
	ID                string    `json:"id" bson:"_id"`
	Title             string    `json:"title" bson:"title"`
	Agenda            string    `json:"agenda" bson:"agenda"`
	StartTime         time.Time `json:"start_time" bson:"start_time"`
	EndTime           time.Time `json:"end_time" bson:"end_time"`
	Organizer         string    `json:"organizer" bson:"organizer"`
	Attendees         []string  `json:"attendees" bson:"attendees"`
	MeetingType       string    `json:"meeting_type" bson:"meeting_type"`
	AttendanceTracked bool      `json:"attendance_tracked" bson:"attendance_tracked"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

func (m *Meeting) SetMeta(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
}

type MeetingCreatePayload struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Agenda      string    `json:"agenda" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Organizer   string    `json:"organizer" validate:"required"`
	Attendees   []string  `json:"attendees"`
	MeetingType string    `json:"meeting_type" validate:"omitempty,oneof=personal team"`
}

func (p MeetingCreatePayload) Build() *Meeting {
	meetingType := p.MeetingType
	if meetingType == "" {
		meetingType = "team"
	}
	return &Meeting{
		Title:       p.Title,
		Agenda:      p.Agenda,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Organizer:   p.Organizer,
		Attendees:   nonNil(p.Attendees),
		MeetingType: meetingType,
	}
}

// MeetingUpdatePayload cannot reset attendance_tracked; that flag belongs to attendance recording.
type MeetingUpdatePayload struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Agenda      *string    `json:"agenda"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Organizer   *string    `json:"organizer"`
	Attendees   *[]string  `json:"attendees"`
	MeetingType *string    `json:"meeting_type" validate:"omitempty,oneof=personal team"`
}

func (p MeetingUpdatePayload) Changes() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "agenda", p.Agenda)
	setIf(set, "start_time", p.StartTime)
	setIf(set, "end_time", p.EndTime)
	setIf(set, "organizer", p.Organizer)
	setIf(set, "attendees", p.Attendees)
	setIf(set, "meeting_type", p.MeetingType)
	return set
}

type MeetingAttendance struct {
	ID        string    `json:"id" bson:"_id"`
	MeetingID string    `json:"meeting_id" bson:"meeting_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (m *MeetingAttendance) SetMeta(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
}

type MeetingAttendancePayload struct {
	MeetingID        string   `json:"meeting_id" validate:"required"`
	AttendeesPresent []string `json:"attendees_present" validate:"dive,required"`
}

type MeetingQRResponse struct {
	MeetingID string `json:"meeting_id"`
	QRCode    string `json:"qr_code"`
}
