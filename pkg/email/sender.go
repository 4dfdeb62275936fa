package email

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender delivers the digest through SendGrid.
type Sender struct {
	client    *sendgrid.Client
	sender    string
	recipient string
}

// NewSender creates a SendGrid sender. The sender address must be verified
// with SendGrid or deliveries bounce.
func NewSender(apiKey, sender, recipient string) (*Sender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid API key is required")
	}
	if sender == "" || recipient == "" {
		return nil, fmt.Errorf("sender and recipient addresses are required")
	}
	return &Sender{
		client:    sendgrid.NewSendClient(apiKey),
		sender:    sender,
		recipient: recipient,
	}, nil
}

// Send delivers one HTML email. Non-2xx responses are errors.
func (s *Sender) Send(ctx context.Context, subject, htmlBody string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", s.sender),
		subject,
		mail.NewEmail("", s.recipient),
		"",
		htmlBody,
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	log.Printf("Email sent: %q from %s to %s (status %d)", subject, s.sender, s.recipient, resp.StatusCode)
	return nil
}
