package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Attachment is a file attached to an outbound email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Email is one outbound message.
type Email struct {
	ToEmail     string
	ToName      string
	Subject     string
	PlainText   string
	HTML        string
	Attachments []Attachment
}

// Mailer is the send capability consumed by the dispatcher and the email
// endpoints. A nil error means the transport accepted the message.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// SendGridMailer sends through the SendGrid API.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Email) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetFilename(a.Filename)
		att.SetType(a.ContentType)
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetDisposition("attachment")
		message.AddAttachment(att)
	}

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", msg.ToEmail, err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email to %s: %d", msg.ToEmail, response.StatusCode)
	}
	return nil
}
