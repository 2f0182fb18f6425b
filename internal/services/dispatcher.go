package services

import (
	"context"
	"fmt"

	"vetbridge/internal/models"
	"vetbridge/internal/templates"
	"vetbridge/internal/timeutil"
)

const reminderSubject = "Appointment Starting Soon - VetBridge"

// Dispatcher renders and sends both recipient-facing reminder emails for one
// record. Both sends are always attempted; the dispatch fails if either one
// failed, so the record's sent flag only ever means "both parties notified".
type Dispatcher struct {
	mailer Mailer
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	return &Dispatcher{mailer: mailer}
}

func (d *Dispatcher) DispatchReminder(ctx context.Context, rec *models.ReminderRecord) error {
	clinicianWhen := timeutil.DisplayForRecipient(
		rec.AppointmentInstant, rec.ClinicianTimezone, rec.AppointmentTime, rec.AppointmentDate)

	ownerFallback := rec.OwnerDisplayTime
	if ownerFallback == "" {
		ownerFallback = rec.AppointmentTime
	}
	ownerWhen := timeutil.DisplayForRecipient(
		rec.AppointmentInstant, rec.OwnerTimezone, ownerFallback, rec.AppointmentDate)

	ownerErr := d.mailer.Send(ctx, Email{
		ToEmail: rec.OwnerEmail,
		ToName:  rec.OwnerName,
		Subject: reminderSubject,
		PlainText: fmt.Sprintf("Hello %s, your appointment with %s starts in 10 minutes (%s). Join: %s",
			rec.OwnerName, rec.ClinicianName, ownerWhen, rec.JoinLink),
		HTML: templates.ReminderOwner(rec.OwnerName, rec.ClinicianName, ownerWhen, rec.JoinLink),
	})

	clinicianErr := d.mailer.Send(ctx, Email{
		ToEmail: rec.ClinicianEmail,
		ToName:  rec.ClinicianName,
		Subject: reminderSubject,
		PlainText: fmt.Sprintf("Hello %s, your appointment with %s starts in 10 minutes (%s). Join: %s",
			rec.ClinicianName, rec.OwnerName, clinicianWhen, rec.JoinLink),
		HTML: templates.ReminderClinician(rec.ClinicianName, rec.OwnerName, clinicianWhen, rec.JoinLink),
	})

	if ownerErr != nil {
		return fmt.Errorf("owner reminder to %s: %w", rec.OwnerEmail, ownerErr)
	}
	if clinicianErr != nil {
		return fmt.Errorf("clinician reminder to %s: %w", rec.ClinicianEmail, clinicianErr)
	}
	return nil
}
