package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the booking event a notification describes
type NotificationType string

const (
	NotificationBookingConfirmation NotificationType = "BookingConfirmation"
	NotificationBookingCancellation NotificationType = "BookingCancellation"
	NotificationPaymentReminder     NotificationType = "PaymentReminder"
)

// Notification channels
const (
	ChannelEmail    = "Email"
	ChannelSMS      = "SMS"
	ChannelWhatsApp = "WhatsApp"
)

// Notification is one persisted fan-out record: one row per channel per event
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	BookingID uuid.UUID        `json:"booking_id" db:"booking_id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Channel   string           `json:"channel" db:"channel"`
	Message   string           `json:"message" db:"message"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// NotificationEvent is published to the queue when a booking transition needs
// to reach the user; the dispatcher consumes it and fans out per channel
type NotificationEvent struct {
	BookingID  uuid.UUID        `json:"booking_id"`
	UserID     uuid.UUID        `json:"user_id"`
	Type       NotificationType `json:"type"`
	TotalPrice float64          `json:"total_price"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Contact carries the delivery addresses for a user
type Contact struct {
	UserID uuid.UUID `db:"id"`
	Name   string    `db:"name"`
	Email  string    `db:"email"`
	Phone  string    `db:"phone"`
}
