package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vetbridge/internal/models"
)

func reminderFixture(t *testing.T) *models.ReminderRecord {
	t.Helper()
	appt, err := time.Parse(time.RFC3339, "2025-06-20T14:00:00Z")
	require.NoError(t, err)
	return &models.ReminderRecord{
		ID:                 bson.NewObjectID(),
		AppointmentInstant: &appt,
		AppointmentDate:    "2025-06-20",
		AppointmentTime:    "10:00 AM",
		ClinicianTimezone:  "America/New_York",
		OwnerTimezone:      "America/Los_Angeles",
		OwnerEmail:         "jamie@example.com",
		OwnerName:          "Jamie",
		ClinicianName:      "Dr. Reyes",
		ClinicianEmail:     "reyes@example.com",
		JoinLink:           "https://meet.example.com/abc",
	}
}

func TestDispatchReminderSendsZoneCorrectEmails(t *testing.T) {
	m := &fakeMailer{}
	d := NewDispatcher(m)

	err := d.DispatchReminder(context.Background(), reminderFixture(t))
	require.NoError(t, err)
	require.Len(t, m.sent, 2)

	byAddr := map[string]Email{}
	for _, e := range m.sent {
		byAddr[e.ToEmail] = e
	}

	owner, ok := byAddr["jamie@example.com"]
	require.True(t, ok, "owner email not sent")
	assert.Equal(t, "Appointment Starting Soon - VetBridge", owner.Subject)
	assert.Contains(t, owner.HTML, "2025-06-20 at 7:00 AM (PDT)")
	assert.Contains(t, owner.HTML, "Dr. Reyes")
	assert.Contains(t, owner.HTML, "https://meet.example.com/abc")

	clinician, ok := byAddr["reyes@example.com"]
	require.True(t, ok, "clinician email not sent")
	assert.Contains(t, clinician.HTML, "2025-06-20 at 10:00 AM (EDT)")
	assert.Contains(t, clinician.HTML, "Jamie")
}

func TestDispatchReminderAttemptsBothOnFailure(t *testing.T) {
	m := &fakeMailer{failFor: map[string]error{"jamie@example.com": errors.New("mailbox full")}}
	d := NewDispatcher(m)

	err := d.DispatchReminder(context.Background(), reminderFixture(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox full")
	// The clinician send was still attempted.
	assert.Len(t, m.sent, 2)
}

func TestDispatchReminderReportsClinicianFailure(t *testing.T) {
	m := &fakeMailer{failFor: map[string]error{"reyes@example.com": errors.New("rejected")}}
	d := NewDispatcher(m)

	err := d.DispatchReminder(context.Background(), reminderFixture(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reyes@example.com")
}

func TestDispatchReminderLegacyFallbackDisplay(t *testing.T) {
	rec := reminderFixture(t)
	rec.AppointmentInstant = nil
	m := &fakeMailer{}
	d := NewDispatcher(m)

	err := d.DispatchReminder(context.Background(), rec)
	require.NoError(t, err)
	require.Len(t, m.sent, 2)
	for _, e := range m.sent {
		assert.Contains(t, e.HTML, "2025-06-20 at 10:00 AM")
		assert.NotContains(t, e.HTML, "(EDT)")
		assert.NotContains(t, e.HTML, "(PDT)")
	}
}

func TestDispatchReminderHonorsOwnerDisplayOverride(t *testing.T) {
	rec := reminderFixture(t)
	rec.AppointmentInstant = nil
	rec.OwnerDisplayTime = "7:00 AM"
	m := &fakeMailer{}
	d := NewDispatcher(m)

	err := d.DispatchReminder(context.Background(), rec)
	require.NoError(t, err)

	for _, e := range m.sent {
		if e.ToEmail == rec.OwnerEmail {
			assert.Contains(t, e.HTML, "2025-06-20 at 7:00 AM")
		}
	}
}
