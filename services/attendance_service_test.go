package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-backend/models"
	"ops-backend/repository"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeAttendanceStore struct {
	records map[string]*models.AttendanceRecord
	seq     int
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: make(map[string]*models.AttendanceRecord)}
}

func (f *fakeAttendanceStore) Create(_ context.Context, record *models.AttendanceRecord) error {
	f.seq++
	record.SetMeta("att-"+strconv.Itoa(f.seq), time.Now())
	copy := *record
	f.records[record.ID] = &copy
	return nil
}

func (f *fakeAttendanceStore) FindByUserAndDate(_ context.Context, userID, date string) (*models.AttendanceRecord, error) {
	for _, r := range f.records {
		if r.UserID == userID && r.Date == date {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAttendanceStore) SetCheckIn(_ context.Context, id string, at time.Time) error {
	r, ok := f.records[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.CheckIn = &at
	r.Status = models.AttendancePresent
	return nil
}

func (f *fakeAttendanceStore) SetCheckOut(_ context.Context, id string, at time.Time, hours float64) error {
	r, ok := f.records[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.CheckOut = &at
	r.TotalHours = &hours
	return nil
}

func (f *fakeAttendanceStore) FindRecords(_ context.Context, userID, month string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range f.records {
		if userID != "" && r.UserID != userID {
			continue
		}
		if month != "" && r.Date[:7] != month {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func TestAttendance_CheckInThenCheckOut(t *testing.T) {
	ctx := context.Background()
	clock := &stubClock{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, clock)

	in, err := svc.CheckIn(ctx, "u1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, clock.now, in)

	clock.now = time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)
	out, hours, err := svc.CheckOut(ctx, "u1", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, clock.now, out)
	assert.Equal(t, 8.5, hours)

	rec, err := store.FindByUserAndDate(ctx, "u1", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, rec.Status)
	require.NotNil(t, rec.TotalHours)
	assert.Equal(t, 8.5, *rec.TotalHours)
}

func TestAttendance_DoubleCheckInConflicts(t *testing.T) {
	ctx := context.Background()
	clock := &stubClock{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(newFakeAttendanceStore(), clock)

	_, err := svc.CheckIn(ctx, "u1", "Alice")
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	_, err = svc.CheckIn(ctx, "u1", "Alice")
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAttendance_CheckInFillsExistingRecord(t *testing.T) {
	ctx := context.Background()
	clock := &stubClock{now: time.Date(2024, 3, 4, 8, 15, 0, 0, time.UTC)}
	store := newFakeAttendanceStore()
	require.NoError(t, store.Create(ctx, &models.AttendanceRecord{UserID: "u1", Date: "2024-03-04", Status: models.AttendanceAbsent}))

	_, err := NewAttendanceService(store, clock).CheckIn(ctx, "u1", "Alice")
	require.NoError(t, err)

	rec, err := store.FindByUserAndDate(ctx, "u1", "2024-03-04")
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, models.AttendancePresent, rec.Status)
	assert.Len(t, store.records, 1)
}

func TestAttendance_CheckOutErrors(t *testing.T) {
	ctx := context.Background()
	clock := &stubClock{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(newFakeAttendanceStore(), clock)

	_, _, err := svc.CheckOut(ctx, "u1", "2024-03-04")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CheckIn(ctx, "u1", "Alice")
	require.NoError(t, err)
	clock.now = clock.now.Add(8 * time.Hour)
	_, _, err = svc.CheckOut(ctx, "u1", "2024-03-04")
	require.NoError(t, err)

	_, _, err = svc.CheckOut(ctx, "u1", "2024-03-04")
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestWorkedHours(t *testing.T) {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		out  time.Time
		want float64
	}{
		{"half hour", base.Add(8*time.Hour + 30*time.Minute), 8.5},
		{"rounded to two decimals", base.Add(time.Hour + 20*time.Minute), 1.33},
		{"half rounds to even", base.Add(8*time.Hour + 7*time.Minute + 30*time.Second), 8.12},
		{"half rounds to the even digit above", base.Add(8*time.Hour + 22*time.Minute + 30*time.Second), 8.38},
		{"same instant", base, 0},
		{"check-out before check-in", base.Add(-time.Hour), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WorkedHours(base, tc.out))
		})
	}
}

func TestSummarizeAttendance(t *testing.T) {
	h := func(v float64) *float64 { return &v }

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, models.AttendanceSummary{}, SummarizeAttendance(nil))
	})

	t.Run("mixed statuses", func(t *testing.T) {
		summary := SummarizeAttendance([]models.AttendanceRecord{
			{Status: models.AttendancePresent, TotalHours: h(8)},
			{Status: models.AttendancePresent, TotalHours: h(7.5)},
			{Status: models.AttendancePresent},
			{Status: models.AttendanceAbsent},
			{Status: models.AttendanceLeave},
			{Status: models.AttendanceHalfDay, TotalHours: h(4)},
		})
		assert.Equal(t, 6, summary.TotalDays)
		assert.Equal(t, 3, summary.PresentDays)
		assert.Equal(t, 1, summary.AbsentDays)
		assert.Equal(t, 1, summary.LeaveDays)
		assert.Equal(t, 19.5, summary.TotalHoursWorked)
		assert.Equal(t, 6.5, summary.AverageHoursPerDay)
	})
}
