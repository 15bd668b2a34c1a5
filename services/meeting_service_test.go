package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-backend/models"
	"ops-backend/repository"
)

type fakeMeetingStore struct {
	meetings map[string]*models.Meeting
}

func (f *fakeMeetingStore) FindByID(_ context.Context, id string) (*models.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *m
	return &copy, nil
}

func (f *fakeMeetingStore) MarkAttendanceTracked(_ context.Context, id string) error {
	m, ok := f.meetings[id]
	if !ok || m.AttendanceTracked {
		return repository.ErrNotFound
	}
	m.AttendanceTracked = true
	return nil
}

func (f *fakeMeetingStore) ReleaseAttendanceTracked(_ context.Context, id string) error {
	m, ok := f.meetings[id]
	if !ok || !m.AttendanceTracked {
		return repository.ErrNotFound
	}
	m.AttendanceTracked = false
	return nil
}

type fakeMeetingAttendance struct {
	records []models.MeetingAttendance
	err     error
}

func (f *fakeMeetingAttendance) CreateMany(_ context.Context, records []*models.MeetingAttendance) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range records {
		f.records = append(f.records, *r)
	}
	return nil
}

func (f *fakeMeetingAttendance) FindByMeeting(_ context.Context, meetingID string) ([]models.MeetingAttendance, error) {
	var out []models.MeetingAttendance
	for _, r := range f.records {
		if r.MeetingID == meetingID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserLookup []models.User

func (f fakeUserLookup) FindByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, u := range f {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func newMeetingFixture() (*MeetingService, *fakeMeetingStore, *fakeMeetingAttendance) {
	meetings := &fakeMeetingStore{meetings: map[string]*models.Meeting{
		"m1": {ID: "m1", Title: "Planning", Attendees: []string{"u1", "u2"}},
	}}
	attendance := &fakeMeetingAttendance{}
	users := fakeUserLookup{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Bob"}}
	return NewMeetingService(meetings, attendance, users), meetings, attendance
}

func TestRecordAttendance(t *testing.T) {
	ctx := context.Background()
	svc, meetings, _ := newMeetingFixture()

	records, err := svc.RecordAttendance(ctx, models.MeetingAttendancePayload{MeetingID: "m1", AttendeesPresent: []string{"u2", "u3"}})
	require.NoError(t, err)
	require.Len(t, records, 3)

	byUser := map[string]models.MeetingAttendance{}
	for _, r := range records {
		byUser[r.UserID] = r
	}
	assert.Equal(t, models.AttendanceAbsent, byUser["u1"].Status)
	assert.Equal(t, "Alice", byUser["u1"].UserName)
	assert.Equal(t, models.AttendancePresent, byUser["u2"].Status)
	assert.Equal(t, models.AttendancePresent, byUser["u3"].Status)
	assert.Equal(t, "u3", byUser["u3"].UserName)
	assert.True(t, meetings.meetings["m1"].AttendanceTracked)

	list, err := svc.Attendance(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRecordAttendance_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _, attendance := newMeetingFixture()
	payload := models.MeetingAttendancePayload{MeetingID: "m1", AttendeesPresent: []string{"u1"}}

	_, err := svc.RecordAttendance(ctx, payload)
	require.NoError(t, err)

	_, err = svc.RecordAttendance(ctx, payload)
	assert.ErrorIs(t, err, ErrAttendanceRecorded)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, attendance.records, 2)
}

func TestRecordAttendance_RetryAfterFailedWrite(t *testing.T) {
	ctx := context.Background()
	svc, meetings, attendance := newMeetingFixture()
	payload := models.MeetingAttendancePayload{MeetingID: "m1", AttendeesPresent: []string{"u1"}}

	attendance.err = errors.New("write failed")
	_, err := svc.RecordAttendance(ctx, payload)
	require.EqualError(t, err, "write failed")
	assert.False(t, meetings.meetings["m1"].AttendanceTracked)
	assert.Empty(t, attendance.records)

	attendance.err = nil
	records, err := svc.RecordAttendance(ctx, payload)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.True(t, meetings.meetings["m1"].AttendanceTracked)
}

func TestRecordAttendance_UnknownMeeting(t *testing.T) {
	svc, _, _ := newMeetingFixture()

	_, err := svc.RecordAttendance(context.Background(), models.MeetingAttendancePayload{MeetingID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.QRCode(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMeetingQRCode(t *testing.T) {
	svc, _, _ := newMeetingFixture()

	qr, err := svc.QRCode(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", qr.MeetingID)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(qr.QRCode, prefix))
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr.QRCode, prefix))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, union([]string{"a", "b", ""}, []string{"b", "c", "a"}))
	assert.Nil(t, union(nil, nil))
}
