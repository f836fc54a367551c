package usecase

import (
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/notifications"
)

// NotificationUC implements the notification usecase
type NotificationUC struct {
	notificationRepo notifications.NotificationRepo
	senders          []notifications.ChannelSender
	cfg              *models.Config
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	notificationRepo notifications.NotificationRepo,
	senders []notifications.ChannelSender,
	cfg *models.Config,
) *NotificationUC {
	return &NotificationUC{
		notificationRepo: notificationRepo,
		senders:          senders,
		cfg:              cfg,
	}
}
