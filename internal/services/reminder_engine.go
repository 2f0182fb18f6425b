package services

import (
	"context"
	"log"
	"sort"
	"time"

	"vetbridge/internal/models"
	"vetbridge/internal/timeutil"
)

const (
	// Reminders are due 10 minutes before the appointment starts.
	reminderLead = 10 * time.Minute
	// The send window opens 5 minutes before that, so an appointment is
	// swept at least once inside its window even with sparse polling.
	windowBuffer = 5 * time.Minute
)

// ReminderStore is the slice of the store the engine needs.
type ReminderStore interface {
	Create(ctx context.Context, rec *models.ReminderRecord) (string, error)
	QueryUnsent(ctx context.Context) ([]models.ReminderRecord, error)
	QueryRecent(ctx context.Context, limit int) ([]models.ReminderRecord, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	MarkFailed(ctx context.Context, id string, dispatchErr error, attemptAt time.Time) error
	GetByID(ctx context.Context, id string) (*models.ReminderRecord, error)
}

// ReminderDispatcher sends both recipient emails for one record.
type ReminderDispatcher interface {
	DispatchReminder(ctx context.Context, rec *models.ReminderRecord) error
}

// ReminderEngine is the sweep algorithm. Each Sweep call is a complete,
// self-contained pass over the unsent records: eligibility is re-derived
// from data every time, so the engine is safe to invoke concurrently from
// the internal timer and the HTTP trigger without coordination.
type ReminderEngine struct {
	store      ReminderStore
	dispatcher ReminderDispatcher

	now func() time.Time
}

func NewReminderEngine(store ReminderStore, dispatcher ReminderDispatcher) *ReminderEngine {
	return &ReminderEngine{
		store:      store,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Sweep processes every unsent reminder once. A record is dispatched iff the
// sweep's single notion of "now" falls inside [appointment-15m, appointment)
// and the record is still unsent. One record's failure never aborts the
// sweep; a store failure aborts it, since there is nothing to iterate.
func (e *ReminderEngine) Sweep(ctx context.Context) (models.SweepResult, error) {
	now := e.now().UTC()

	recs, err := e.store.QueryUnsent(ctx)
	if err != nil {
		return models.SweepResult{}, err
	}

	result := models.SweepResult{Timestamp: now}
	for i := range recs {
		rec := &recs[i]
		result.ProcessedCount++

		appointment, err := timeutil.ResolveInstant(
			rec.AppointmentInstant, rec.AppointmentDate, rec.AppointmentTime, rec.ClinicianTimezone)
		if err != nil {
			log.Printf("Error: reminder %s has unusable appointment time: %v", rec.ID.Hex(), err)
			continue
		}

		windowOpen := appointment.Add(-(reminderLead + windowBuffer))
		if now.Before(windowOpen) || !now.Before(appointment) || rec.Sent {
			// Outside the window, or a missed window that is never caught
			// up: a reminder for an already-started appointment has no value.
			continue
		}

		if err := e.dispatcher.DispatchReminder(ctx, rec); err != nil {
			log.Printf("Error: failed to dispatch reminder %s: %v", rec.ID.Hex(), err)
			if mfErr := e.store.MarkFailed(ctx, rec.ID.Hex(), err, now); mfErr != nil {
				log.Printf("Error: failed to record dispatch failure for %s: %v", rec.ID.Hex(), mfErr)
			}
			continue
		}

		if err := e.store.MarkSent(ctx, rec.ID.Hex(), now); err != nil {
			log.Printf("Error: failed to mark reminder %s sent: %v", rec.ID.Hex(), err)
			continue
		}
		result.SentCount++
		log.Printf("Reminder %s dispatched to %s and %s", rec.ID.Hex(), rec.OwnerEmail, rec.ClinicianEmail)
	}

	return result, nil
}

// CreateReminder persists a record for a future sweep to pick up.
func (e *ReminderEngine) CreateReminder(ctx context.Context, rec *models.ReminderRecord) (string, error) {
	return e.store.Create(ctx, rec)
}

// RecentReminders returns the newest records for the status views.
func (e *ReminderEngine) RecentReminders(ctx context.Context, limit int) ([]models.ReminderRecord, error) {
	return e.store.QueryRecent(ctx, limit)
}

// ForceDispatch sends one named reminder immediately, ignoring its window,
// then marks it sent. Manual-override path for diagnostics.
func (e *ReminderEngine) ForceDispatch(ctx context.Context, id string) (*models.ReminderRecord, error) {
	rec, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.dispatcher.DispatchReminder(ctx, rec); err != nil {
		return nil, err
	}
	if err := e.store.MarkSent(ctx, id, e.now().UTC()); err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateTestReminder stores a synthetic record 15 minutes out, which puts it
// right at the edge of its send window for end-to-end testing.
func (e *ReminderEngine) CreateTestReminder(ctx context.Context) (string, *models.ReminderRecord, error) {
	appointment := e.now().UTC().Add(reminderLead + windowBuffer).Truncate(time.Second)
	display := timeutil.ToZonedDisplay(appointment, timeutil.FallbackZone)

	rec := &models.ReminderRecord{
		AppointmentInstant: &appointment,
		AppointmentDate:    display.LocalDate,
		AppointmentTime:    display.LocalTime,
		ClinicianTimezone:  timeutil.FallbackZone,
		OwnerTimezone:      timeutil.FallbackZone,
		OwnerEmail:         "test@example.com",
		OwnerName:          "Test Owner",
		ClinicianName:      "Test Clinician",
		ClinicianEmail:     "test.clinician@example.com",
		JoinLink:           "https://meet.example.com/test",
		IsTest:             true,
	}

	id, err := e.store.Create(ctx, rec)
	if err != nil {
		return "", nil, err
	}
	return id, rec, nil
}

// DescribeReminders builds the diagnostic view: every recent record with its
// computed window edges, actionable records first.
func (e *ReminderEngine) DescribeReminders(ctx context.Context, limit int) ([]models.ReminderStatus, error) {
	recs, err := e.store.QueryRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := e.now().UTC()
	statuses := make([]models.ReminderStatus, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		status := models.ReminderStatus{
			ID:                rec.ID.Hex(),
			OwnerEmail:        rec.OwnerEmail,
			AppointmentDate:   rec.AppointmentDate,
			AppointmentTime:   rec.AppointmentTime,
			Sent:              rec.Sent,
			ClinicianTimezone: rec.ClinicianTimezone,
			OwnerTimezone:     rec.OwnerTimezone,
			LastError:         rec.LastError,
		}

		appointment, err := timeutil.ResolveInstant(
			rec.AppointmentInstant, rec.AppointmentDate, rec.AppointmentTime, rec.ClinicianTimezone)
		if err == nil {
			reminderAt := appointment.Add(-reminderLead)
			windowOpen := reminderAt.Add(-windowBuffer)
			status.AppointmentInstant = &appointment
			status.ReminderAt = &reminderAt
			status.WindowOpensAt = &windowOpen
			status.ShouldSendNow = !now.Before(windowOpen) && now.Before(appointment) && !rec.Sent
			status.MinutesToReminder = int(reminderAt.Sub(now).Minutes())
			status.MinutesToAppointment = int(appointment.Sub(now).Minutes())
		}
		statuses = append(statuses, status)
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].ShouldSendNow != statuses[j].ShouldSendNow {
			return statuses[i].ShouldSendNow
		}
		return statuses[i].MinutesToReminder < statuses[j].MinutesToReminder
	})
	return statuses, nil
}
