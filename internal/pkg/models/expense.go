package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a cost entry recorded against a car
type Expense struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CarID      uuid.UUID `json:"carId" db:"car_id"`
	Category   string    `json:"category" db:"category"`
	Amount     float64   `json:"amount" db:"amount"`
	Note       string    `json:"note" db:"note"`
	IncurredAt time.Time `json:"incurredAt" db:"incurred_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
