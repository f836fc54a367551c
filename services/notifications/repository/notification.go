package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// NotificationRepo implements the notification repository interface
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository instance
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// InsertNotification persists one channel record of a fan-out
func (r *NotificationRepo) InsertNotification(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, booking_id, user_id, type, channel,
			message, created_at
		) VALUES (:id, :booking_id, :user_id, :type, :channel,
			:message, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListByUser returns a user's notifications, newest first
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	query := `
		SELECT id, booking_id, user_id, type, channel, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var notifications []models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// GetContact returns the delivery addresses for a user
func (r *NotificationRepo) GetContact(ctx context.Context, userID uuid.UUID) (*models.Contact, error) {
	query := `SELECT id, name, email, phone FROM users WHERE id = $1`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("user %s", userID)
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &contact, nil
}

// GetBookingSummary returns the recipient and amount for a booking
func (r *NotificationRepo) GetBookingSummary(ctx context.Context, bookingID uuid.UUID) (*models.NotificationEvent, error) {
	query := `SELECT id AS booking_id, user_id, total_price FROM bookings WHERE id = $1`

	var event models.NotificationEvent
	err := r.db.QueryRowxContext(ctx, query, bookingID).
		Scan(&event.BookingID, &event.UserID, &event.TotalPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("booking %s", bookingID)
		}
		return nil, fmt.Errorf("failed to get booking summary: %w", err)
	}
	return &event, nil
}
