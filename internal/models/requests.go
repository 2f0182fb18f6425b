package models

import "time"

// Request payloads for the email endpoints. Every endpoint binds to an
// explicit struct so malformed bodies are rejected before any email or
// database work happens.

type WelcomeEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

type BookingEmailRequest struct {
	ClinicianEmail string `json:"clinicianEmail" binding:"required,email"`
	ClinicianName  string `json:"clinicianName" binding:"required"`
	OwnerEmail     string `json:"ownerEmail" binding:"required,email"`
	OwnerName      string `json:"ownerName" binding:"required"`
	PetName        string `json:"petName"`

	AppointmentDate    string     `json:"appointmentDate" binding:"required"`
	AppointmentTime    string     `json:"appointmentTime" binding:"required"`
	AppointmentInstant *time.Time `json:"appointmentInstant"`
	ClinicianTimezone  string     `json:"clinicianTimezone"`
	OwnerTimezone      string     `json:"ownerTimezone"`
	OwnerDisplayTime   string     `json:"ownerDisplayTime"`

	JoinLink string `json:"joinLink" binding:"required,url"`
}

type RescheduleEmailRequest struct {
	BookingEmailRequest

	// Previous slot, in the clinician's original (US Eastern) wall clock.
	PreviousDate string `json:"previousDate" binding:"required"`
	PreviousTime string `json:"previousTime" binding:"required"`
}

type DonationReceiptRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	TransactionID string `json:"transactionId"`
	IsRecurring   bool   `json:"isRecurring"`
	BadgeName     string `json:"badgeName"`
	Date          string `json:"date"`
	PaymentMethod string `json:"paymentMethod"`
}

type PaymentEmailRequest struct {
	To            string `json:"to" binding:"required,email"`
	Name          string `json:"name"`
	TransactionID string `json:"transactionId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	PharmacyName  string `json:"pharmacyName"`
	Date          string `json:"date"`
}

type RequestAcceptedEmailRequest struct {
	PaymentEmailRequest

	PharmacyAddress string `json:"pharmacyAddress"`
	PharmacyCity    string `json:"pharmacyCity"`
	PharmacyState   string `json:"pharmacyState"`
}

type HelpRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	EmailAddress string `json:"emailAddress" binding:"required,email"`
	PhoneNo      string `json:"phoneNo"`
	State        string `json:"state"`
	Subject      string `json:"subject" binding:"required"`
	Message      string `json:"message" binding:"required"`
	UserType     string `json:"userType"`
	UserID       string `json:"userId"`
}

type HelpReplyRequest struct {
	To             string      `json:"to" binding:"required,email"`
	Subject        string      `json:"subject"`
	Message        string      `json:"message" binding:"required"`
	OriginalTicket *HelpTicket `json:"originalTicket"`
}

type HelpTicket struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type TriggerReminderRequest struct {
	ReminderID string `json:"reminderId" binding:"required"`
}
