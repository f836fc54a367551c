package chat

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/DipakAnap/cablink-backend/services/chat BookingReader

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// BookingReader is the slice of the booking repository chat depends on
type BookingReader interface {
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
