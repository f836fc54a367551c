package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// SendMessage appends one message to a booking's chat log. The booking must
// exist; senders are not restricted beyond that so support staff can join.
func (uc *ChatUC) SendMessage(ctx context.Context, bookingID, senderID uuid.UUID, body string) (*models.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.InvalidInputf("message body is required")
	}

	if _, err := uc.bookingRepo.GetBookingByID(ctx, bookingID); err != nil {
		return nil, err
	}

	message := &models.ChatMessage{
		BookingID: bookingID,
		SenderID:  senderID,
		Body:      body,
	}
	if err := uc.chatRepo.InsertMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages returns a booking's chat log in send order
func (uc *ChatUC) ListMessages(ctx context.Context, bookingID uuid.UUID) ([]models.ChatMessage, error) {
	if _, err := uc.bookingRepo.GetBookingByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListByBooking(ctx, bookingID)
}
