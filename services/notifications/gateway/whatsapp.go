package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// WhatsAppSender delivers notifications through an HTTP WhatsApp gateway
type WhatsAppSender struct {
	cfg    models.NotificationConfig
	client *http.Client
}

// NewWhatsAppSender creates a new WhatsApp sender
func NewWhatsAppSender(cfg models.NotificationConfig) *WhatsAppSender {
	return &WhatsAppSender{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Channel returns the channel name
func (s *WhatsAppSender) Channel() string {
	return models.ChannelWhatsApp
}

// Send delivers the message to the contact's phone number
func (s *WhatsAppSender) Send(ctx context.Context, contact *models.Contact, message string) error {
	if s.cfg.WhatsAppGatewayURL == "" {
		return nil
	}
	if contact.Phone == "" {
		return fmt.Errorf("contact has no phone number")
	}

	payload, err := json.Marshal(map[string]string{
		"to":   contact.Phone,
		"body": message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal WhatsApp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WhatsAppGatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build WhatsApp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.WhatsAppAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call WhatsApp gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("WhatsApp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
