package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// CreatePlan registers a subscription plan offered by a provider
func (uc *UserUC) CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	if plan.DurationMonths <= 0 {
		return apperr.InvalidInputf("durationMonths must be positive")
	}
	if plan.CustomerDiscountPercent < 0 || plan.CustomerDiscountPercent > 100 {
		return apperr.InvalidInputf("customerDiscountPercent must be within [0,100]")
	}
	return uc.userRepo.CreatePlan(ctx, plan)
}

// ListPlans returns all subscription plans
func (uc *UserUC) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return uc.userRepo.ListPlans(ctx)
}

// SubscribeUser assigns a plan to a user. The expiry date is the assignment
// moment plus the plan duration; pricing treats the plan as active until then.
func (uc *UserUC) SubscribeUser(ctx context.Context, userID, planID uuid.UUID) (*models.User, error) {
	plan, err := uc.userRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	expiry := time.Now().AddDate(0, plan.DurationMonths, 0)
	if err := uc.userRepo.AssignPlan(ctx, userID, planID, expiry); err != nil {
		return nil, err
	}

	logger.Info("Subscription plan assigned",
		logger.String("user_id", userID.String()),
		logger.String("plan_id", planID.String()),
		logger.String("expires", expiry.Format(time.RFC3339)),
	)

	return uc.userRepo.GetUserByID(ctx, userID)
}
