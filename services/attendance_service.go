package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ops-backend/models"
	"ops-backend/repository"
)

type AttendanceStore interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	FindByUserAndDate(ctx context.Context, userID, date string) (*models.AttendanceRecord, error)
	SetCheckIn(ctx context.Context, id string, at time.Time) error
	SetCheckOut(ctx context.Context, id string, at time.Time, hours float64) error
	FindRecords(ctx context.Context, userID, month string) ([]models.AttendanceRecord, error)
}

// AttendanceService records daily check-in/check-out and derives worked hours.
// Two concurrent check-ins for the same user and day are not mutually exclusive.
type AttendanceService struct {
	store AttendanceStore
	clock Clock
}

func NewAttendanceService(store AttendanceStore, clock Clock) *AttendanceService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AttendanceService{store: store, clock: clock}
}

// CheckIn stamps today's record for the user and returns the timestamp used.
func (s *AttendanceService) CheckIn(ctx context.Context, userID, userName string) (time.Time, error) {
	now := s.clock.Now()
	today := now.Format(models.DateLayout)

	existing, err := s.store.FindByUserAndDate(ctx, userID, today)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return time.Time{}, err
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return time.Time{}, ErrAlreadyCheckedIn
		}
		if err := s.store.SetCheckIn(ctx, existing.ID, now); err != nil {
			return time.Time{}, storeErr("attendance", err)
		}
		return now, nil
	}

	record := &models.AttendanceRecord{
		UserID:   userID,
		UserName: userName,
		Date:     today,
		CheckIn:  &now,
		Status:   models.AttendancePresent,
	}
	if err := s.store.Create(ctx, record); err != nil {
		return time.Time{}, storeErr("attendance", err)
	}
	return now, nil
}

// CheckOut closes the user's record for date and returns the check-out time and worked hours.
func (s *AttendanceService) CheckOut(ctx context.Context, userID, date string) (time.Time, float64, error) {
	record, err := s.store.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return time.Time{}, 0, fmt.Errorf("attendance for %s on %s: %w", userID, date, ErrNotCheckedIn)
		}
		return time.Time{}, 0, err
	}
	if record.CheckOut != nil {
		return time.Time{}, 0, ErrAlreadyCheckedOut
	}
	if record.CheckIn == nil {
		return time.Time{}, 0, ErrNotCheckedIn
	}

	now := s.clock.Now()
	hours := WorkedHours(*record.CheckIn, now)
	if err := s.store.SetCheckOut(ctx, record.ID, now, hours); err != nil {
		return time.Time{}, 0, storeErr("attendance", err)
	}
	return now, hours, nil
}

func (s *AttendanceService) Records(ctx context.Context, userID, month string) ([]models.AttendanceRecord, error) {
	return s.store.FindRecords(ctx, userID, month)
}

func (s *AttendanceService) Summary(ctx context.Context, userID string) (models.AttendanceSummary, error) {
	records, err := s.store.FindRecords(ctx, userID, "")
	if err != nil {
		return models.AttendanceSummary{}, err
	}
	return SummarizeAttendance(records), nil
}

// WorkedHours is the elapsed time between in and out in hours, rounded half to even at 2 decimals.
// A check-out before the check-in counts as zero.
func WorkedHours(in, out time.Time) float64 {
	elapsed := out.Sub(in)
	if elapsed < 0 {
		return 0
	}
	return decimal.NewFromInt(int64(elapsed)).
		Div(decimal.NewFromInt(int64(time.Hour))).
		RoundBank(2).
		InexactFloat64()
}

func SummarizeAttendance(records []models.AttendanceRecord) models.AttendanceSummary {
	summary := models.AttendanceSummary{TotalDays: len(records)}
	total := decimal.Zero

	for _, r := range records {
		switch r.Status {
		case models.AttendancePresent:
			summary.PresentDays++
		case models.AttendanceAbsent:
			summary.AbsentDays++
		case models.AttendanceLeave:
			summary.LeaveDays++
		}
		if r.TotalHours != nil {
			total = total.Add(decimal.NewFromFloat(*r.TotalHours))
		}
	}

	summary.TotalHoursWorked = total.RoundBank(2).InexactFloat64()
	if summary.PresentDays > 0 {
		summary.AverageHoursPerDay = total.
			Div(decimal.NewFromInt(int64(summary.PresentDays))).
			RoundBank(2).
			InexactFloat64()
	}
	return summary
}
