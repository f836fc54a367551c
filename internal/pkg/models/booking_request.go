package models

import (
	"time"

	"github.com/google/uuid"
)

// RouteBookingRequest is the payload for booking seats on a scheduled route
type RouteBookingRequest struct {
	RouteID       uuid.UUID     `json:"routeId"`
	UserID        uuid.UUID     `json:"userId"`
	SeatsToBook   int           `json:"seatsToBook"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
}

// PrivateBookingRequest is the payload for an exclusive vehicle hire.
// TotalPrice is the client's own estimate; the server recomputes the price
// and treats the client value as advisory.
type PrivateBookingRequest struct {
	UserID              uuid.UUID     `json:"userId"`
	CarID               uuid.UUID     `json:"carId"`
	PickupLocation      string        `json:"pickupLocation"`
	DropoffLocation     string        `json:"dropoffLocation"`
	StartDate           time.Time     `json:"startDate"`
	EndDate             time.Time     `json:"endDate"`
	PaymentStatus       PaymentStatus `json:"paymentStatus,omitempty"`
	TotalPrice          float64       `json:"totalPrice,omitempty"`
	EstimatedDistanceKm *float64      `json:"estimatedDistanceKm,omitempty"`
}

// FinalizeRequest closes out a private booking with either the measured
// distance or an explicit overriding price
type FinalizeRequest struct {
	ActualDistanceKm *float64 `json:"actualDistanceKm,omitempty"`
	FinalPrice       *float64 `json:"finalPrice,omitempty"`
}
