package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReminderRecord is one scheduled appointment notification. A record is
// created when a booking or reschedule is confirmed and is mutated only by
// the reminder engine: the single permitted transition is sent=false to
// sent=true, never back.
type ReminderRecord struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	// AppointmentInstant is the authoritative appointment start time in UTC.
	// Legacy records may lack it, in which case it is derived from the local
	// date/time fields in the clinician's timezone.
	AppointmentInstant *time.Time `bson:"appointmentInstant,omitempty" json:"appointmentInstant,omitempty"`

	// Display-oriented wall-clock fields in the clinician's original input zone.
	AppointmentDate string `bson:"appointmentLocalDate" json:"appointmentLocalDate"`
	AppointmentTime string `bson:"appointmentLocalTime" json:"appointmentLocalTime"`

	ClinicianTimezone string `bson:"clinicianTimezone,omitempty" json:"clinicianTimezone,omitempty"`
	OwnerTimezone     string `bson:"ownerTimezone,omitempty" json:"ownerTimezone,omitempty"`
	OwnerDisplayTime  string `bson:"ownerDisplayTime,omitempty" json:"ownerDisplayTime,omitempty"`

	OwnerEmail     string `bson:"ownerContact" json:"ownerContact"`
	OwnerName      string `bson:"ownerDisplayName" json:"ownerDisplayName"`
	ClinicianName  string `bson:"clinicianDisplayName" json:"clinicianDisplayName"`
	ClinicianEmail string `bson:"clinicianContact" json:"clinicianContact"`
	JoinLink       string `bson:"joinLink" json:"joinLink"`

	Sent      bool       `bson:"sent" json:"sent"`
	CreatedAt time.Time  `bson:"createdInstant" json:"createdInstant"`
	SentAt    *time.Time `bson:"sentInstant,omitempty" json:"sentInstant,omitempty"`

	LastError   string     `bson:"lastError,omitempty" json:"lastError,omitempty"`
	LastAttempt *time.Time `bson:"lastAttemptInstant,omitempty" json:"lastAttemptInstant,omitempty"`

	IsReschedule bool   `bson:"isReschedule,omitempty" json:"isReschedule,omitempty"`
	OriginalTime string `bson:"originalLocalTime,omitempty" json:"originalLocalTime,omitempty"`

	// IsTest marks synthetic records created through the test endpoints.
	// They go through the same send window as real ones.
	IsTest bool `bson:"isTest,omitempty" json:"isTest,omitempty"`
}

// SweepResult summarises one pass of the reminder engine.
type SweepResult struct {
	ProcessedCount int       `json:"processedCount"`
	SentCount      int       `json:"sentCount"`
	Timestamp      time.Time `json:"timestamp"`
}

// ReminderStatus is the diagnostic projection of a record, with the send
// window edges computed against the current time.
type ReminderStatus struct {
	ID                   string     `json:"id"`
	OwnerEmail           string     `json:"ownerContact"`
	AppointmentDate      string     `json:"appointmentLocalDate"`
	AppointmentTime      string     `json:"appointmentLocalTime"`
	AppointmentInstant   *time.Time `json:"appointmentInstant,omitempty"`
	ReminderAt           *time.Time `json:"reminderAt,omitempty"`
	WindowOpensAt        *time.Time `json:"windowOpensAt,omitempty"`
	Sent                 bool       `json:"sent"`
	ShouldSendNow        bool       `json:"shouldSendNow"`
	MinutesToReminder    int        `json:"minutesToReminder"`
	MinutesToAppointment int        `json:"minutesToAppointment"`
	ClinicianTimezone    string     `json:"clinicianTimezone,omitempty"`
	OwnerTimezone        string     `json:"ownerTimezone,omitempty"`
	LastError            string     `json:"lastError,omitempty"`
}
