package chat

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DipakAnap/cablink-backend/services/chat ChatUC

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// ChatUC defines the chat usecase operations
type ChatUC interface {
	// SendMessage appends one message to a booking's chat log
	SendMessage(ctx context.Context, bookingID, senderID uuid.UUID, body string) (*models.ChatMessage, error)

	// ListMessages returns a booking's chat log in send order
	ListMessages(ctx context.Context, bookingID uuid.UUID) ([]models.ChatMessage, error)
}
