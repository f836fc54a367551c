package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// InsertMessage persists one chat message
func (r *ChatRepo) InsertMessage(ctx context.Context, message *models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()

	query := `
		INSERT INTO chat_messages (id, booking_id, sender_id, body, created_at)
		VALUES (:id, :booking_id, :sender_id, :body, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListByBooking returns a booking's messages ordered by creation time
func (r *ChatRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]models.ChatMessage, error) {
	query := `
		SELECT id, booking_id, sender_id, body, created_at
		FROM chat_messages
		WHERE booking_id = $1
		ORDER BY created_at ASC
	`
	var messages []models.ChatMessage
	if err := r.db.SelectContext(ctx, &messages, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}
