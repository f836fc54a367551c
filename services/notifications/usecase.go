package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DipakAnap/cablink-backend/services/notifications NotificationUC

// NotificationUC represents the notification usecase interface
type NotificationUC interface {
	// Dispatch fans one booking event out to every configured channel,
	// persisting one record per channel. Delivery is best effort: a failed
	// channel is logged and never fails the dispatch.
	Dispatch(ctx context.Context, event *models.NotificationEvent) error

	// SendPaymentReminder dispatches a PaymentReminder for a pending booking
	SendPaymentReminder(ctx context.Context, bookingID uuid.UUID) error

	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
}
