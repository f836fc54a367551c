package usecase

import (
	"context"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/bookings"
)

// BookingUC implements the booking usecase
type BookingUC struct {
	bookingRepo bookings.BookingRepo
	fleetRepo   bookings.FleetReader
	userRepo    bookings.UserReader
	settings    bookings.SettingsReader
	notifier    bookings.NotificationGW
	cfg         *models.Config
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(
	bookingRepo bookings.BookingRepo,
	fleetRepo bookings.FleetReader,
	userRepo bookings.UserReader,
	settings bookings.SettingsReader,
	notifier bookings.NotificationGW,
	cfg *models.Config,
) *BookingUC {
	return &BookingUC{
		bookingRepo: bookingRepo,
		fleetRepo:   fleetRepo,
		userRepo:    userRepo,
		settings:    settings,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// notifyBooking publishes a booking event toward the dispatcher. Delivery is
// best effort: a publish failure never affects the booking's outcome.
func (uc *BookingUC) notifyBooking(ctx context.Context, booking *models.Booking, eventType models.NotificationType) {
	event := &models.NotificationEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		Type:       eventType,
		TotalPrice: booking.TotalPrice,
	}
	if err := uc.notifier.PublishBookingEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.ErrorField(err),
			logger.String("booking_id", booking.ID.String()),
			logger.String("event", string(eventType)),
		)
	}
}
