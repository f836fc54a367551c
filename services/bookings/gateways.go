package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/DipakAnap/cablink-backend/services/bookings FleetReader,UserReader,SettingsReader,NotificationGW

// FleetReader is the slice of the fleet service the pricing core consults
type FleetReader interface {
	GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
}

// UserReader is the slice of the user service the booking core consults:
// referral linkage, reward flag operations and the driver's plan state
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ConsumeReferralReward(ctx context.Context, userID uuid.UUID) (bool, error)
	RestoreReferralReward(ctx context.Context, userID uuid.UUID) error
	GrantReferralReward(ctx context.Context, userID uuid.UUID) error
	GetDriverSubscription(ctx context.Context, driverID uuid.UUID) (*models.DriverSubscription, error)
}

// SettingsReader exposes runtime settings to pricing
type SettingsReader interface {
	GetPercentSetting(ctx context.Context, key string) (float64, error)
}

// NotificationGW publishes booking events toward the notification dispatcher
type NotificationGW interface {
	PublishBookingEvent(ctx context.Context, event *models.NotificationEvent) error
}
