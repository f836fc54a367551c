package models

import (
	"time"

	"github.com/google/uuid"
)

// Route represents a scheduled shared trip with seats for sale
type Route struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CarID        uuid.UUID `json:"carId" db:"car_id"`
	Origin       string    `json:"from" db:"origin"`
	Destination  string    `json:"to" db:"destination"`
	Date         time.Time `json:"date" db:"date"`
	Time         string    `json:"time" db:"time"`
	Price        float64   `json:"price" db:"price"`
	SeatsOffered *int      `json:"seatsOffered,omitempty" db:"seats_offered"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Car            *Car `json:"car,omitempty" db:"-"`
	SeatsAvailable *int `json:"seatsAvailable,omitempty" db:"-"`
}

// RouteFilter narrows route listings
type RouteFilter struct {
	Origin      string
	Destination string
	Date        *time.Time
	Page        int
	Limit       int
}

// SeatCapacity returns the number of seats offered on the route, falling back
// to the car's capacity when the route does not override it.
func (r *Route) SeatCapacity(carCapacity int) int {
	if r.SeatsOffered != nil && *r.SeatsOffered > 0 {
		return *r.SeatsOffered
	}
	return carCapacity
}
