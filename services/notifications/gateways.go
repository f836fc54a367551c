package notifications

import (
	"context"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/DipakAnap/cablink-backend/services/notifications ChannelSender

// ChannelSender delivers a rendered message over one channel (Email, SMS,
// WhatsApp). Implementations own their transport and timeouts.
type ChannelSender interface {
	Channel() string
	Send(ctx context.Context, contact *models.Contact, message string) error
}
