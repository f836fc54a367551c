package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DipakAnap/cablink-backend/services/bookings BookingRepo

// BookingRepo represents the booking repository interface. Writes that race
// with other bookings (seat capacity, status transitions) are expressed as
// conditional statements so the database arbitrates.
type BookingRepo interface {
	// InsertRouteBooking persists a route booking only if the route's
	// non-cancelled seat total stays within seatCapacity
	InsertRouteBooking(ctx context.Context, booking *models.Booking, seatCapacity int) error
	InsertPrivateBooking(ctx context.Context, booking *models.Booking) error

	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error)

	// UpdateSeats rewrites seat count and price only while the booking is
	// Confirmed and the route stays within seatCapacity; reports whether
	// the row changed
	UpdateSeats(ctx context.Context, bookingID uuid.UUID, seats int, totalPrice float64, seatCapacity int) (bool, error)

	// TransitionStatus moves a booking from one status to another in a
	// single conditional write; reports whether the transition happened
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) (bool, error)

	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status models.PaymentStatus) error

	// FinalizeBooking completes a Confirmed private booking with its final
	// price and measured distance; reports whether the row changed
	FinalizeBooking(ctx context.Context, bookingID uuid.UUID, totalPrice float64, actualDistanceKm *float64) (bool, error)

	CountCompletedBookings(ctx context.Context, userID uuid.UUID) (int, error)
}
