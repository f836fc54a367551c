package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry of a booking's chat log
type ChatMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookingID uuid.UUID `json:"bookingId" db:"booking_id"`
	SenderID  uuid.UUID `json:"senderId" db:"sender_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
