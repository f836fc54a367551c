package models

import (
	"time"

	"github.com/google/uuid"
)

// CarStatus represents the listing state of a car
type CarStatus string

const (
	CarStatusActive          CarStatus = "Active"
	CarStatusPendingApproval CarStatus = "PendingApproval"
	CarStatusPendingPayment  CarStatus = "PendingPayment"
	CarStatusDeleted         CarStatus = "Deleted"
)

// Car represents a vehicle operated by a driver or car owner
type Car struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	CarNumber   string     `json:"carNumber" db:"car_number"`
	Model       string     `json:"model" db:"model"`
	DriverID    *uuid.UUID `json:"driverId,omitempty" db:"driver_id"`
	Capacity    int        `json:"capacity" db:"capacity"`
	PricePerKm  float64    `json:"pricePerKm" db:"price_per_km"`
	MinKmPerDay *float64   `json:"minKmPerDay,omitempty" db:"min_km_per_day"`
	ImageURL    string     `json:"imageUrl" db:"image_url"`
	Status      CarStatus  `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	Driver *User `json:"driver,omitempty" db:"-"`
}

// MinDistanceFloor returns the minimum billable distance for the given number
// of rental days, 0 when the car has no per-day floor configured.
func (c *Car) MinDistanceFloor(days int) float64 {
	if c.MinKmPerDay == nil {
		return 0
	}
	return *c.MinKmPerDay * float64(days)
}
