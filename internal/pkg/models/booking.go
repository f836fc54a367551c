package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingType distinguishes seat-based route bookings from private hires
type BookingType string

const (
	BookingTypeRoute   BookingType = "Route"
	BookingTypePrivate BookingType = "Private"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// PaymentStatus tracks payment independently of the booking lifecycle
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// ValidBookingStatus reports whether s is one of the known lifecycle states
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the allowed payment states
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Booking is the central entity: a priced reservation of route seats or a
// private vehicle hire
type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	UserID        uuid.UUID     `json:"userId" db:"user_id"`
	BookingDate   time.Time     `json:"bookingDate" db:"booking_date"`
	BookingType   BookingType   `json:"bookingType" db:"booking_type"`
	Status        BookingStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	TotalPrice    float64       `json:"totalPrice" db:"total_price"`

	// DiscountApplied is the absolute referral amount subtracted from the
	// price; it is restored to the user's reward flag on cancellation.
	DiscountApplied float64 `json:"discountApplied" db:"discount_applied"`

	// Route bookings
	RouteID     *uuid.UUID `json:"routeId,omitempty" db:"route_id"`
	SeatsBooked *int       `json:"seatsBooked,omitempty" db:"seats_booked"`

	// Private bookings
	CarID            *uuid.UUID `json:"carId,omitempty" db:"car_id"`
	PickupLocation   *string    `json:"pickupLocation,omitempty" db:"pickup_location"`
	DropoffLocation  *string    `json:"dropoffLocation,omitempty" db:"dropoff_location"`
	StartDate        *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate          *time.Time `json:"endDate,omitempty" db:"end_date"`
	ActualDistanceKm *float64   `json:"actualDistanceKm,omitempty" db:"actual_distance_km"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	User  *User  `json:"user,omitempty" db:"-"`
	Car   *Car   `json:"car,omitempty" db:"-"`
	Route *Route `json:"route,omitempty" db:"-"`
}

// BookingFilter narrows booking listings
type BookingFilter struct {
	CarID       *uuid.UUID
	RouteID     *uuid.UUID
	BookingType BookingType
	Date        *time.Time
	Page        int
	Limit       int
}
