package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DipakAnap/cablink-backend/services/notifications NotificationRepo

// NotificationRepo represents the notification repository interface
type NotificationRepo interface {
	InsertNotification(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)

	// GetContact returns the delivery addresses for a user
	GetContact(ctx context.Context, userID uuid.UUID) (*models.Contact, error)

	// GetBookingSummary returns the recipient and amount for a booking,
	// used when composing payment reminders
	GetBookingSummary(ctx context.Context, bookingID uuid.UUID) (*models.NotificationEvent, error)
}
