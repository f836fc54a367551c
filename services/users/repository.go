package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DipakAnap/cablink-backend/services/users UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*models.User, error)
	ListUsers(ctx context.Context, role string, page, limit int) ([]models.User, int, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// referral rewards
	//
	// ConsumeReferralReward clears the reward flag only when it is currently
	// set and reports whether this call cleared it, so concurrent bookings
	// cannot both spend the same reward.
	ConsumeReferralReward(ctx context.Context, userID uuid.UUID) (bool, error)
	RestoreReferralReward(ctx context.Context, userID uuid.UUID) error
	GrantReferralReward(ctx context.Context, userID uuid.UUID) error

	// GetDriverSubscription returns the driver's plan linkage used by pricing
	GetDriverSubscription(ctx context.Context, driverID uuid.UUID) (*models.DriverSubscription, error)

	// subscription plans
	CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error
	GetPlanByID(ctx context.Context, id uuid.UUID) (*models.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	AssignPlan(ctx context.Context, userID, planID uuid.UUID, expiry time.Time) error
}
