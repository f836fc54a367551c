package chat

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DipakAnap/cablink-backend/services/chat ChatRepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// ChatRepo defines the chat repository operations
type ChatRepo interface {
	// InsertMessage persists one chat message
	InsertMessage(ctx context.Context, message *models.ChatMessage) error

	// ListByBooking returns a booking's messages ordered by creation time
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]models.ChatMessage, error)
}
