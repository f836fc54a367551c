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

// SMSSender delivers notifications through an HTTP SMS gateway keyed by an
// API token in the authorization header.
type SMSSender struct {
	cfg    models.NotificationConfig
	client *http.Client
}

// NewSMSSender creates a new SMS sender
func NewSMSSender(cfg models.NotificationConfig) *SMSSender {
	return &SMSSender{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Channel returns the channel name
func (s *SMSSender) Channel() string {
	return models.ChannelSMS
}

// Send delivers the message to the contact's phone number
func (s *SMSSender) Send(ctx context.Context, contact *models.Contact, message string) error {
	if s.cfg.SMSGatewayURL == "" {
		return nil
	}
	if contact.Phone == "" {
		return fmt.Errorf("contact has no phone number")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"route":    "q",
		"numbers":  contact.Phone,
		"message":  message,
		"language": "english",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal SMS payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SMSGatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.cfg.SMSAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call SMS gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}
	return nil
}
