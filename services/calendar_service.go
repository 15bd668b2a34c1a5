package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"ops-backend/models"
)

const (
	defaultOccurrenceWindow = 30 * 24 * time.Hour
	maxOccurrenceWindow     = 366 * 24 * time.Hour
)

// CalendarSyncer pushes an event to an external calendar and returns its external id, if any.
// Implementations should return once ctx is done.
type CalendarSyncer interface {
	Sync(ctx context.Context, event *models.CalendarEvent) (string, error)
}

// GoogleCalendarSyncer is a placeholder: it checks for credentials and logs, but never calls out.
type GoogleCalendarSyncer struct {
	email    string
	password string
	log      *zap.Logger
}

func NewGoogleCalendarSyncer(email, password string, log *zap.Logger) *GoogleCalendarSyncer {
	return &GoogleCalendarSyncer{email: email, password: password, log: log}
}

func (g *GoogleCalendarSyncer) Sync(_ context.Context, event *models.CalendarEvent) (string, error) {
	if g.email == "" || g.password == "" {
		g.log.Warn("google calendar credentials not configured, skipping sync", zap.String("event_id", event.ID))
		return "", nil
	}
	g.log.Info("would sync event to google calendar", zap.String("event_id", event.ID), zap.String("title", event.Title))
	return "", nil
}

type CalendarStore interface {
	FindByID(ctx context.Context, id string) (*models.CalendarEvent, error)
	Create(ctx context.Context, event *models.CalendarEvent) error
	Update(ctx context.Context, id string, set bson.M) error
}

type CalendarService struct {
	store       CalendarStore
	syncer      CalendarSyncer
	syncTimeout time.Duration
	clock       Clock
	log         *zap.Logger
}

func NewCalendarService(store CalendarStore, syncer CalendarSyncer, syncTimeout time.Duration, clock Clock, log *zap.Logger) *CalendarService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &CalendarService{store: store, syncer: syncer, syncTimeout: syncTimeout, clock: clock, log: log}
}

// Create stores the event, then syncs it. Sync failures are logged and never fail the call.
func (s *CalendarService) Create(ctx context.Context, payload models.CalendarEventCreatePayload) (*models.CalendarEvent, error) {
	event := payload.Build()
	if err := s.store.Create(ctx, event); err != nil {
		return nil, storeErr("calendar event", err)
	}

	externalID, err := s.sync(ctx, event)
	if err != nil {
		s.log.Warn("calendar sync failed", zap.String("event_id", event.ID), zap.Error(err))
		return event, nil
	}
	if externalID == "" {
		return event, nil
	}

	if err := s.store.Update(ctx, event.ID, bson.M{"google_event_id": externalID}); err != nil {
		s.log.Warn("failed to store external event id", zap.String("event_id", event.ID), zap.Error(err))
		return event, nil
	}
	event.ExternalEventID = externalID
	return event, nil
}

type syncResult struct {
	id  string
	err error
}

// sync waits at most syncTimeout for the syncer. A syncer that ignores ctx keeps running in the
// background and its late result is dropped.
func (s *CalendarService) sync(ctx context.Context, event *models.CalendarEvent) (string, error) {
	if s.syncer == nil {
		return "", nil
	}
	if s.syncTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.syncTimeout)
		defer cancel()
	}

	snapshot := *event
	done := make(chan syncResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- syncResult{err: fmt.Errorf("calendar syncer panicked: %v", r)}
			}
		}()
		id, err := s.syncer.Sync(ctx, &snapshot)
		done <- syncResult{id: id, err: err}
	}()

	select {
	case res := <-done:
		return res.id, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("calendar sync abandoned: %w", ctx.Err())
	}
}

// Occurrences expands the event between from and to (inclusive). Zero bounds default to
// now .. now+30 days. Every occurrence keeps the event's duration.
func (s *CalendarService) Occurrences(ctx context.Context, id string, from, to time.Time) ([]models.Occurrence, error) {
	if from.IsZero() {
		from = s.clock.Now()
	}
	if to.IsZero() {
		to = from.Add(defaultOccurrenceWindow)
	}
	if !to.After(from) {
		return nil, fmt.Errorf("range end must be after start: %w", ErrValidation)
	}
	if to.Sub(from) > maxOccurrenceWindow {
		return nil, fmt.Errorf("range must not exceed %d days: %w", int(maxOccurrenceWindow.Hours()/24), ErrValidation)
	}

	event, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("calendar event", err)
	}
	return ExpandOccurrences(event, from, to)
}

func ExpandOccurrences(event *models.CalendarEvent, from, to time.Time) ([]models.Occurrence, error) {
	duration := event.EndTime.Sub(event.StartTime)
	occurrence := func(start time.Time) models.Occurrence {
		return models.Occurrence{EventID: event.ID, Title: event.Title, StartTime: start, EndTime: start.Add(duration)}
	}

	if event.RecurrenceRule == "" {
		if event.StartTime.Before(from) || event.StartTime.After(to) {
			return []models.Occurrence{}, nil
		}
		return []models.Occurrence{occurrence(event.StartTime)}, nil
	}

	opt, err := rrule.StrToROption(event.RecurrenceRule)
	if err != nil {
		return nil, fmt.Errorf("recurrence rule: %v: %w", err, ErrValidation)
	}
	opt.Dtstart = event.StartTime
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("recurrence rule: %v: %w", err, ErrValidation)
	}

	starts := rule.Between(from, to, true)
	out := make([]models.Occurrence, 0, len(starts))
	for _, start := range starts {
		out = append(out, occurrence(start))
	}
	return out, nil
}
