package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/notifications"
)

// renderMessage builds the user-facing text for a booking event
func renderMessage(event *models.NotificationEvent) string {
	switch event.Type {
	case models.NotificationBookingConfirmation:
		return fmt.Sprintf("Your booking #%s is confirmed. Total: %.2f", event.BookingID, event.TotalPrice)
	case models.NotificationBookingCancellation:
		return fmt.Sprintf("Your booking #%s has been cancelled.", event.BookingID)
	case models.NotificationPaymentReminder:
		return fmt.Sprintf("Payment of %.2f for booking #%s is still pending.", event.TotalPrice, event.BookingID)
	default:
		return fmt.Sprintf("Update for booking #%s.", event.BookingID)
	}
}

// Dispatch fans a booking event out to every configured channel. Each channel
// gets its own audit record; deliveries run concurrently and failures are
// logged without affecting the other channels or the caller.
func (uc *NotificationUC) Dispatch(ctx context.Context, event *models.NotificationEvent) error {
	contact, err := uc.notificationRepo.GetContact(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}

	message := renderMessage(event)

	var wg sync.WaitGroup
	for _, sender := range uc.senders {
		if !uc.channelEnabled(sender.Channel()) {
			continue
		}

		notification := &models.Notification{
			BookingID: event.BookingID,
			UserID:    event.UserID,
			Type:      event.Type,
			Channel:   sender.Channel(),
			Message:   message,
		}
		if err := uc.notificationRepo.InsertNotification(ctx, notification); err != nil {
			logger.Error("Failed to persist notification record",
				logger.ErrorField(err),
				logger.String("booking_id", event.BookingID.String()),
				logger.String("channel", sender.Channel()),
			)
			continue
		}

		wg.Add(1)
		go func(s notifications.ChannelSender) {
			defer wg.Done()
			if err := s.Send(ctx, contact, message); err != nil {
				logger.Warn("Notification delivery failed",
					logger.ErrorField(err),
					logger.String("booking_id", event.BookingID.String()),
					logger.String("channel", s.Channel()),
				)
			}
		}(sender)
	}
	wg.Wait()

	return nil
}

func (uc *NotificationUC) channelEnabled(channel string) bool {
	if len(uc.cfg.Notification.Channels) == 0 {
		return true
	}
	for _, enabled := range uc.cfg.Notification.Channels {
		if enabled == channel {
			return true
		}
	}
	return false
}

// SendPaymentReminder dispatches a PaymentReminder for a booking
func (uc *NotificationUC) SendPaymentReminder(ctx context.Context, bookingID uuid.UUID) error {
	event, err := uc.notificationRepo.GetBookingSummary(ctx, bookingID)
	if err != nil {
		return err
	}
	event.Type = models.NotificationPaymentReminder
	return uc.Dispatch(ctx, event)
}

// ListByUser returns a user's notification history
func (uc *NotificationUC) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	return uc.notificationRepo.ListByUser(ctx, userID)
}
