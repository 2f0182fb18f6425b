// Package templates holds the HTML bodies for every outbound email. Each
// template is a pure function from display strings to markup.
package templates

import "fmt"

const commonStyles = `<style>
  body { margin: 0; padding: 0; background-color: #f4f6f8; font-family: Arial, Helvetica, sans-serif; color: #333; }
  .email-container { max-width: 600px; margin: 0 auto; background: #ffffff; border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden; }
  .header { background-color: #00695c; padding: 18px; text-align: center; color: #ffffff; font-size: 22px; font-weight: bold; }
  .body { padding: 20px 28px; line-height: 1.5; }
  .button { display: inline-block; background-color: #00695c; color: #ffffff !important; padding: 12px 28px; border-radius: 6px; text-decoration: none; font-weight: bold; margin: 16px 0; }
  .footer { background: #eceff1; padding: 14px; font-size: 12px; color: #607d8b; text-align: center; }
</style>`

const headerHTML = `<div class="header">VetBridge</div>`

const footerHTML = `<div class="footer">
  <p>VetBridge &middot; Veterinary care, wherever you are</p>
  <p>Questions? <a href="mailto:support@vetbridge.example.com">support@vetbridge.example.com</a></p>
</div>`

func joinButton(link, label string) string {
	return fmt.Sprintf(`<p style="text-align:center;"><a class="button" href="%s">%s</a></p>`, link, label)
}

func page(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%s</title>
  %s
</head>
<body>
  <div class="email-container">
    %s
    <div class="body">
%s
    </div>
    %s
  </div>
</body>
</html>`, title, commonStyles, headerHTML, body, footerHTML)
}

// WelcomeEmail greets a newly registered pet owner.
func WelcomeEmail(name string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>Welcome to VetBridge! We're delighted to have you and your pet with us.</p>
      <p>You can now book video appointments with licensed veterinarians, manage prescriptions, and get advice whenever you need it.</p>
      <p>Warm regards,<br>The VetBridge Team</p>`, name)
	return page("Welcome to VetBridge", body)
}

// ReminderOwner tells the pet owner their appointment starts in 10 minutes.
func ReminderOwner(ownerName, clinicianName, when, joinLink string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>This is a friendly reminder that your video call appointment with <strong>%s</strong> is starting in just 10 minutes!</p>
      <p><strong>Date &amp; Time:</strong> %s</p>
      <p><strong>Veterinarian:</strong> %s</p>
%s
      <p>Please have any questions about your pet ready for the consultation. If you run into technical difficulties, contact us right away.</p>
      <p>Warm regards,<br>The VetBridge Team</p>`,
		ownerName, clinicianName, when, clinicianName, joinButton(joinLink, "Join Appointment Now"))
	return page("Appointment Starting Soon", body)
}

// ReminderClinician tells the veterinarian their appointment starts in 10 minutes.
func ReminderClinician(clinicianName, ownerName, when, joinLink string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>This is a reminder that your video call appointment with <strong>%s</strong> is starting in 10 minutes.</p>
      <p><strong>Date &amp; Time:</strong> %s</p>
      <p><strong>Client:</strong> %s</p>
%s
      <p>Please make sure your notes are ready before joining.</p>
      <p>Best regards,<br>The VetBridge Team</p>`,
		clinicianName, ownerName, when, ownerName, joinButton(joinLink, "Join Appointment Now"))
	return page("Appointment Starting Soon", body)
}

// BookingConfirmationOwner confirms a new booking to the pet owner.
func BookingConfirmationOwner(ownerName, clinicianName, when, petName, joinLink string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>Your appointment with <strong>%s</strong> for <strong>%s</strong> is confirmed.</p>
      <p><strong>Date &amp; Time:</strong> %s</p>
%s
      <p>Click the link above a few minutes before your scheduled time. We'll also send you a reminder shortly before the call.</p>
      <p>Warm regards,<br>The VetBridge Team</p>`,
		ownerName, clinicianName, petName, when, joinButton(joinLink, "Join Appointment"))
	return page("Your Appointment Confirmation", body)
}

// BookingConfirmationClinician confirms a new booking to the veterinarian.
func BookingConfirmationClinician(clinicianName, ownerName, when, petName, joinLink string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>A new appointment with <strong>%s</strong> (pet: <strong>%s</strong>) has been booked.</p>
      <p><strong>Date &amp; Time:</strong> %s</p>
%s
      <p>Best regards,<br>The VetBridge Team</p>`,
		clinicianName, ownerName, petName, when, joinButton(joinLink, "Join Appointment"))
	return page("Appointment Confirmation", body)
}

// RescheduleConfirmationOwner confirms a rescheduled booking to the pet
// owner, showing the previous slot in the owner's own clock.
func RescheduleConfirmationOwner(ownerName, clinicianName, when, previous, petName, joinLink string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>Your appointment with <strong>%s</strong> for <strong>%s</strong> has been rescheduled.</p>
      <p><strong>Previous time:</strong> %s</p>
      <p><strong>New date &amp; time:</strong> %s</p>
%s
      <p>Warm regards,<br>The VetBridge Team</p>`,
		ownerName, clinicianName, petName, previous, when, joinButton(joinLink, "Join Appointment"))
	return page("Your Appointment Has Been Rescheduled", body)
}

// RescheduleConfirmationClinician confirms a rescheduled booking to the veterinarian.
func RescheduleConfirmationClinician(clinicianName, ownerName, when, previous, petName, joinLink string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>Your appointment with <strong>%s</strong> (pet: <strong>%s</strong>) has been rescheduled.</p>
      <p><strong>Previous time:</strong> %s</p>
      <p><strong>New date &amp; time:</strong> %s</p>
%s
      <p>Best regards,<br>The VetBridge Team</p>`,
		clinicianName, ownerName, petName, previous, when, joinButton(joinLink, "Join Appointment"))
	return page("Appointment Rescheduled", body)
}

// DonationThankYou thanks a donor; the PDF receipt travels as an attachment.
func DonationThankYou(name, amount, transactionID string, isRecurring bool, badgeName, date, paymentMethod string) string {
	recurring := "Your one-time donation makes an immediate impact on the animals in our care."
	if isRecurring {
		recurring = "Your recurring monthly donation helps us provide ongoing support to animals in need."
	}
	badge := ""
	if badgeName != "" {
		badge = fmt.Sprintf(`      <p><strong>Badge:</strong> %s</p>
`, badgeName)
	}
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>Thank you for your generous donation to VetBridge. %s</p>
      <p><strong>Receipt No:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Amount:</strong> $%s</p>
%s      <p><strong>Payment Method:</strong> %s</p>
      <p>Your receipt is attached to this email for your records.</p>
      <p>With heartfelt thanks,<br>The VetBridge Team</p>`,
		name, recurring, transactionID, date, amount, badge, paymentMethod)
	return page("Thank You for Your Donation", body)
}

// PharmacyPaymentReceipt confirms a paid pharmacy transfer request.
func PharmacyPaymentReceipt(name, transactionID, amount, pharmacyName, date string) string {
	if name == "" {
		name = "Pet Parent"
	}
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>Thank you for your payment! We've successfully received your pharmacy transfer request. Below is your receipt:</p>
      <p><strong>Pharmacy:</strong> %s</p>
      <p><strong>Amount Paid:</strong> $%s</p>
      <p><strong>Transaction ID:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p>Our team will begin processing your pharmacy transfer right away. The typical turnaround is 2-3 business days.</p>
      <p>If you have any questions or need support, feel free to reply to this email.</p>
      <p>Warm regards,<br>The VetBridge Team</p>`,
		name, pharmacyName, amount, transactionID, date)
	return page("Your Pharmacy Transfer Payment Receipt", body)
}

// PharmacyRequestAccepted tells the owner their transfer request was accepted
// and where the prescription is headed.
func PharmacyRequestAccepted(name, transactionID, amount, pharmacyName, pharmacyAddress, pharmacyCity, pharmacyState, date string) string {
	body := fmt.Sprintf(`      <p>Dear %s,</p>
      <p>We're happy to let you know that your pharmacy transfer request has been <strong>accepted</strong>.</p>
      <p>Our team is now processing your request, and we'll forward the prescription to your nearby pharmacy as soon as possible.</p>
      <p><strong>Pharmacy:</strong> %s</p>
      <p><strong>Pharmacy Address:</strong> %s, %s, %s</p>
      <p><strong>Amount Paid:</strong> $%s</p>
      <p><strong>Transaction ID:</strong> %s</p>
      <p><strong>Requested Date:</strong> %s</p>
      <p>If you have any questions or need further assistance, feel free to reply to this email.</p>
      <p>Sincerely,<br>The VetBridge Team</p>`,
		name, pharmacyName, pharmacyAddress, pharmacyCity, pharmacyState, amount, transactionID, date)
	return page("Your Pharmacy Transfer Request Accepted", body)
}

// HelpRequestEmail formats an inbound support request for the support inbox.
func HelpRequestEmail(fullName, emailAddress, phoneNo, state, subject, message, userType, userID string) string {
	body := fmt.Sprintf(`      <p><strong>New help request</strong></p>
      <p><strong>From:</strong> %s &lt;%s&gt;</p>
      <p><strong>Phone:</strong> %s</p>
      <p><strong>State:</strong> %s</p>
      <p><strong>User:</strong> %s (%s)</p>
      <p><strong>Subject:</strong> %s</p>
      <div style="background:#f5f5f5;padding:10px;border-radius:5px;">
        <p>%s</p>
      </div>`,
		fullName, emailAddress, phoneNo, state, userID, userType, subject, message)
	return page("Help Request", body)
}

// HelpReplyEmail formats an admin reply, quoting the original ticket.
func HelpReplyEmail(message, originalSubject, originalMessage string) string {
	body := fmt.Sprintf(`      <p><strong>Your original request:</strong></p>
      <div style="background:#f5f5f5;padding:10px;border-radius:5px;">
        <p><strong>Subject:</strong> %s</p>
        <p>%s</p>
      </div>
      <p><strong>Our reply:</strong></p>
      <div style="background:#e8f5e9;padding:10px;border-radius:5px;">
        <p>%s</p>
      </div>
      <p>Thank you for contacting VetBridge Support.</p>`,
		originalSubject, originalMessage, message)
	return page("Response from VetBridge Support", body)
}
