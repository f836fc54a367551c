package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DipakAnap/cablink-backend/services/bookings BookingUC

// BookingUC represents the booking usecase interface: pricing at creation
// time plus every lifecycle transition after it
type BookingUC interface {
	// pricing operations
	CreateRouteBooking(ctx context.Context, req *models.RouteBookingRequest) (*models.Booking, error)
	CreatePrivateBooking(ctx context.Context, req *models.PrivateBookingRequest) (*models.Booking, error)

	// reads
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error)

	// lifecycle transitions
	UpdateSeats(ctx context.Context, bookingID uuid.UUID, newSeatCount int) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status models.PaymentStatus) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	FinalizeBooking(ctx context.Context, bookingID uuid.UUID, req *models.FinalizeRequest) (*models.Booking, error)
}
