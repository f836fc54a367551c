package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// GetUserByID retrieves a user by ID
func (uc *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// ListUsers returns a page of users filtered by role
func (uc *UserUC) ListUsers(ctx context.Context, role string, page, limit int) ([]models.User, int, error) {
	return uc.userRepo.ListUsers(ctx, role, page, limit)
}

// UpdateUser updates a user's profile fields
func (uc *UserUC) UpdateUser(ctx context.Context, user *models.User) error {
	return uc.userRepo.UpdateUser(ctx, user)
}
