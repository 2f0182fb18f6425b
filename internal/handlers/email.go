package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vetbridge/internal/models"
	"vetbridge/internal/services"
	"vetbridge/internal/templates"
	"vetbridge/internal/timeutil"
)

// SendWelcomeEmail greets a newly registered pet owner.
func (h *Handler) SendWelcomeEmail(c *gin.Context) {
	var req models.WelcomeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.mailer.Send(c.Request.Context(), services.Email{
		ToEmail:   req.Email,
		ToName:    req.Name,
		Subject:   "Welcome to VetBridge!",
		PlainText: fmt.Sprintf("Welcome to VetBridge, %s!", req.Name),
		HTML:      templates.WelcomeEmail(req.Name),
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to send welcome email", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome email sent successfully!"})
}

// SendBookingConfirmation emails both parties and stores the reminder record
// that a later sweep will pick up. A reminder-storage failure is logged but
// does not fail the request: the confirmations already went out.
func (h *Handler) SendBookingConfirmation(c *gin.Context) {
	var req models.BookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	clinicianWhen := timeutil.DisplayForRecipient(
		req.AppointmentInstant, req.ClinicianTimezone, req.AppointmentTime, req.AppointmentDate)
	ownerFallback := req.OwnerDisplayTime
	if ownerFallback == "" {
		ownerFallback = req.AppointmentTime
	}
	ownerWhen := timeutil.DisplayForRecipient(
		req.AppointmentInstant, req.OwnerTimezone, ownerFallback, req.AppointmentDate)

	ctx := c.Request.Context()
	ownerErr := h.mailer.Send(ctx, services.Email{
		ToEmail:   req.OwnerEmail,
		ToName:    req.OwnerName,
		Subject:   "Your Appointment Confirmation - VetBridge",
		PlainText: fmt.Sprintf("Your appointment with %s is confirmed for %s.", req.ClinicianName, ownerWhen),
		HTML:      templates.BookingConfirmationOwner(req.OwnerName, req.ClinicianName, ownerWhen, req.PetName, req.JoinLink),
	})
	clinicianErr := h.mailer.Send(ctx, services.Email{
		ToEmail:   req.ClinicianEmail,
		ToName:    req.ClinicianName,
		Subject:   "Appointment Confirmation - VetBridge",
		PlainText: fmt.Sprintf("Appointment with %s confirmed for %s.", req.OwnerName, clinicianWhen),
		HTML:      templates.BookingConfirmationClinician(req.ClinicianName, req.OwnerName, clinicianWhen, req.PetName, req.JoinLink),
	})
	if ownerErr != nil || clinicianErr != nil {
		if ownerErr == nil {
			ownerErr = clinicianErr
		}
		handleError(c, http.StatusInternalServerError, "Failed to send booking confirmation emails", ownerErr)
		return
	}

	if _, err := h.engine.CreateReminder(ctx, reminderFromBooking(&req, false, "")); err != nil {
		log.Printf("Error: failed to store reminder for %s: %v", req.OwnerEmail, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmation emails sent successfully!"})
}

// SendRescheduleConfirmation emails both parties about the new slot, showing
// the previous slot in each reader's own clock, and stores a fresh reminder.
func (h *Handler) SendRescheduleConfirmation(c *gin.Context) {
	var req models.RescheduleEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	clinicianWhen := timeutil.DisplayForRecipient(
		req.AppointmentInstant, req.ClinicianTimezone, req.AppointmentTime, req.AppointmentDate)
	ownerFallback := req.OwnerDisplayTime
	if ownerFallback == "" {
		ownerFallback = req.AppointmentTime
	}
	ownerWhen := timeutil.DisplayForRecipient(
		req.AppointmentInstant, req.OwnerTimezone, ownerFallback, req.AppointmentDate)

	// The previous slot was entered in US Eastern; show the owner their own
	// wall clock for it.
	ownerPrevious := fmt.Sprintf("%s at %s",
		req.PreviousDate, timeutil.ConvertEasternToZone(req.PreviousTime, req.PreviousDate, req.OwnerTimezone))
	clinicianPrevious := fmt.Sprintf("%s at %s", req.PreviousDate, req.PreviousTime)

	ctx := c.Request.Context()
	ownerErr := h.mailer.Send(ctx, services.Email{
		ToEmail:   req.OwnerEmail,
		ToName:    req.OwnerName,
		Subject:   "Your Appointment Has Been Rescheduled - VetBridge",
		PlainText: fmt.Sprintf("Your appointment with %s moved from %s to %s.", req.ClinicianName, ownerPrevious, ownerWhen),
		HTML:      templates.RescheduleConfirmationOwner(req.OwnerName, req.ClinicianName, ownerWhen, ownerPrevious, req.PetName, req.JoinLink),
	})
	clinicianErr := h.mailer.Send(ctx, services.Email{
		ToEmail:   req.ClinicianEmail,
		ToName:    req.ClinicianName,
		Subject:   "Appointment Rescheduled - VetBridge",
		PlainText: fmt.Sprintf("Appointment with %s moved from %s to %s.", req.OwnerName, clinicianPrevious, clinicianWhen),
		HTML:      templates.RescheduleConfirmationClinician(req.ClinicianName, req.OwnerName, clinicianWhen, clinicianPrevious, req.PetName, req.JoinLink),
	})
	if ownerErr != nil || clinicianErr != nil {
		if ownerErr == nil {
			ownerErr = clinicianErr
		}
		handleError(c, http.StatusInternalServerError, "Failed to send reschedule confirmation emails", ownerErr)
		return
	}

	if _, err := h.engine.CreateReminder(ctx, reminderFromBooking(&req.BookingEmailRequest, true, req.PreviousTime)); err != nil {
		log.Printf("Error: failed to store reminder for %s: %v", req.OwnerEmail, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reschedule confirmation emails sent successfully!"})
}

// SendDonationThankYou renders the PDF receipt and emails it. If rendering
// fails the thank-you still goes out without the attachment.
func (h *Handler) SendDonationThankYou(c *gin.Context) {
	var req models.DonationReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	ctx := c.Request.Context()
	var attachments []services.Attachment
	receiptHTML := templates.DonationReceiptHTML(
		req.Name, req.Amount, req.TransactionID, req.IsRecurring, req.BadgeName, req.Date, req.PaymentMethod)
	if pdfBytes, err := h.pdf.RenderPDF(ctx, receiptHTML); err != nil {
		log.Printf("Error: receipt PDF generation failed, sending without attachment: %v", err)
	} else {
		attachments = append(attachments, services.Attachment{
			Filename:    "Donation_Receipt.pdf",
			ContentType: "application/pdf",
			Content:     pdfBytes,
		})
	}

	err := h.mailer.Send(ctx, services.Email{
		ToEmail:     req.Email,
		ToName:      req.Name,
		Subject:     "Thank You for Your Generous Donation - VetBridge",
		PlainText:   fmt.Sprintf("Thank you %s for your donation of $%s.", req.Name, req.Amount),
		HTML:        templates.DonationThankYou(req.Name, req.Amount, req.TransactionID, req.IsRecurring, req.BadgeName, req.Date, req.PaymentMethod),
		Attachments: attachments,
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to send donation email", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donation thank you email sent successfully!"})
}

// SendPaymentEmail sends the pharmacy transfer payment receipt.
func (h *Handler) SendPaymentEmail(c *gin.Context) {
	var req models.PaymentEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Missing fields", err)
		return
	}

	err := h.mailer.Send(c.Request.Context(), services.Email{
		ToEmail:   req.To,
		ToName:    req.Name,
		Subject:   "Your Pharmacy Transfer Payment Receipt",
		PlainText: fmt.Sprintf("We received your pharmacy transfer payment of $%s (transaction %s).", req.Amount, req.TransactionID),
		HTML:      templates.PharmacyPaymentReceipt(req.Name, req.TransactionID, req.Amount, req.PharmacyName, req.Date),
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Email failed to send", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent!"})
}

// SendRequestAcceptedEmail tells the owner their pharmacy transfer request was
// accepted.
func (h *Handler) SendRequestAcceptedEmail(c *gin.Context) {
	var req models.RequestAcceptedEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Missing fields", err)
		return
	}

	err := h.mailer.Send(c.Request.Context(), services.Email{
		ToEmail:   req.To,
		ToName:    req.Name,
		Subject:   "Your Pharmacy Transfer Request Accepted",
		PlainText: fmt.Sprintf("Your pharmacy transfer request %s has been accepted.", req.TransactionID),
		HTML: templates.PharmacyRequestAccepted(
			req.Name, req.TransactionID, req.Amount, req.PharmacyName,
			req.PharmacyAddress, req.PharmacyCity, req.PharmacyState, req.Date),
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Email failed to send", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent!"})
}

// SendHelpRequest forwards a support request to the support inbox.
func (h *Handler) SendHelpRequest(c *gin.Context) {
	var req models.HelpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.mailer.Send(c.Request.Context(), services.Email{
		ToEmail:   h.cfg.SupportEmail,
		ToName:    "VetBridge Support",
		Subject:   fmt.Sprintf("Help Request from %s", req.FullName),
		PlainText: fmt.Sprintf("Help request from %s <%s>: %s", req.FullName, req.EmailAddress, req.Message),
		HTML: templates.HelpRequestEmail(
			req.FullName, req.EmailAddress, req.PhoneNo, req.State, req.Subject, req.Message, req.UserType, req.UserID),
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to send help request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Help request sent successfully!"})
}

// SendHelpReply sends an admin reply to a support ticket.
func (h *Handler) SendHelpReply(c *gin.Context) {
	var req models.HelpReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "'to' and 'message' are required", err)
		return
	}

	originalSubject, originalMessage := "N/A", ""
	if req.OriginalTicket != nil {
		originalSubject = req.OriginalTicket.Subject
		originalMessage = req.OriginalTicket.Message
	}
	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("Re: %s", originalSubject)
	}

	err := h.mailer.Send(c.Request.Context(), services.Email{
		ToEmail:   req.To,
		Subject:   subject,
		PlainText: req.Message,
		HTML:      templates.HelpReplyEmail(req.Message, originalSubject, originalMessage),
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to send email", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent!"})
}

func reminderFromBooking(req *models.BookingEmailRequest, isReschedule bool, originalTime string) *models.ReminderRecord {
	return &models.ReminderRecord{
		AppointmentInstant: req.AppointmentInstant,
		AppointmentDate:    req.AppointmentDate,
		AppointmentTime:    req.AppointmentTime,
		ClinicianTimezone:  req.ClinicianTimezone,
		OwnerTimezone:      req.OwnerTimezone,
		OwnerDisplayTime:   req.OwnerDisplayTime,
		OwnerEmail:         req.OwnerEmail,
		OwnerName:          req.OwnerName,
		ClinicianName:      req.ClinicianName,
		ClinicianEmail:     req.ClinicianEmail,
		JoinLink:           req.JoinLink,
		IsReschedule:       isReschedule,
		OriginalTime:       originalTime,
	}
}
