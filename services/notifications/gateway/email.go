package gateway

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// EmailSender delivers notifications over SMTP. When the SMTP host is not
// configured the sender silently skips delivery so local setups run without
// a mail server.
type EmailSender struct {
	cfg models.NotificationConfig
}

// NewEmailSender creates a new SMTP email sender
func NewEmailSender(cfg models.NotificationConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

// Channel returns the channel name
func (s *EmailSender) Channel() string {
	return models.ChannelEmail
}

// Send delivers the message to the contact's email address
func (s *EmailSender) Send(ctx context.Context, contact *models.Contact, message string) error {
	if s.cfg.SMTPHost == "" {
		logger.Debug("SMTP not configured, skipping email delivery",
			logger.String("recipient", contact.Email),
		)
		return nil
	}
	if contact.Email == "" {
		return fmt.Errorf("contact has no email address")
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: CabLink Booking Update\r\n\r\n%s\r\n",
		s.cfg.SMTPFrom, contact.Email, message)

	if err := smtp.SendMail(addr, auth, s.cfg.SMTPFrom, []string{contact.Email}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
