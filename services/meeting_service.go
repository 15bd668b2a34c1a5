package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"ops-backend/models"
	"ops-backend/repository"
)

const qrSize = 256

type MeetingStore interface {
	FindByID(ctx context.Context, id string) (*models.Meeting, error)
	MarkAttendanceTracked(ctx context.Context, id string) error
	ReleaseAttendanceTracked(ctx context.Context, id string) error
}

type MeetingAttendanceStore interface {
	CreateMany(ctx context.Context, records []*models.MeetingAttendance) error
	FindByMeeting(ctx context.Context, meetingID string) ([]models.MeetingAttendance, error)
}

type UserLookup interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

type MeetingService struct {
	meetings   MeetingStore
	attendance MeetingAttendanceStore
	users      UserLookup
}

func NewMeetingService(meetings MeetingStore, attendance MeetingAttendanceStore, users UserLookup) *MeetingService {
	return &MeetingService{meetings: meetings, attendance: attendance, users: users}
}

// RecordAttendance writes one present/absent row per invited or present user. It succeeds once per meeting.
func (s *MeetingService) RecordAttendance(ctx context.Context, payload models.MeetingAttendancePayload) ([]models.MeetingAttendance, error) {
	meeting, err := s.meetings.FindByID(ctx, payload.MeetingID)
	if err != nil {
		return nil, storeErr("meeting", err)
	}
	if meeting.AttendanceTracked {
		return nil, ErrAttendanceRecorded
	}

	present := make(map[string]bool, len(payload.AttendeesPresent))
	for _, id := range payload.AttendeesPresent {
		present[id] = true
	}
	userIDs := union(meeting.Attendees, payload.AttendeesPresent)

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	if err := s.meetings.MarkAttendanceTracked(ctx, meeting.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceRecorded
		}
		return nil, err
	}

	records := make([]*models.MeetingAttendance, 0, len(userIDs))
	for _, id := range userIDs {
		status := models.AttendanceAbsent
		if present[id] {
			status = models.AttendancePresent
		}
		name := names[id]
		if name == "" {
			name = id
		}
		records = append(records, &models.MeetingAttendance{
			MeetingID: meeting.ID,
			UserID:    id,
			UserName:  name,
			Status:    status,
		})
	}
	if err := s.attendance.CreateMany(ctx, records); err != nil {
		// Give the claim back so the recording can be retried.
		if rerr := s.meetings.ReleaseAttendanceTracked(context.WithoutCancel(ctx), meeting.ID); rerr != nil {
			return nil, errors.Join(err, fmt.Errorf("release meeting %s: %w", meeting.ID, rerr))
		}
		return nil, err
	}

	out := make([]models.MeetingAttendance, 0, len(records))
	for _, r := range records {
		out = append(out, *r)
	}
	return out, nil
}

func (s *MeetingService) Attendance(ctx context.Context, meetingID string) ([]models.MeetingAttendance, error) {
	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		return nil, storeErr("meeting", err)
	}
	return s.attendance.FindByMeeting(ctx, meetingID)
}

// QRCode renders the meeting id as a PNG data URI.
func (s *MeetingService) QRCode(ctx context.Context, meetingID string) (*models.MeetingQRResponse, error) {
	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		return nil, storeErr("meeting", err)
	}

	png, err := qrcode.Encode(meetingID, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return &models.MeetingQRResponse{
		MeetingID: meetingID,
		QRCode:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

// union keeps first-seen order and drops duplicates and empty ids.
func union(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range lists {
		for _, id := range list {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
