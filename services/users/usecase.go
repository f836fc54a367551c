package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DipakAnap/cablink-backend/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// authentication
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// account management
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, role string, page, limit int) ([]models.User, int, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// subscription plans
	CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	SubscribeUser(ctx context.Context, userID, planID uuid.UUID) (*models.User, error)
}
