package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// CreatePlan inserts a subscription plan
func (r *UserRepo) CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	plan.CreatedAt = time.Now()

	query := `
		INSERT INTO subscription_plans (id, name, duration_months, price,
			customer_discount_percent, provider_id, provider_role, created_at
		) VALUES (:id, :name, :duration_months, :price,
			:customer_discount_percent, :provider_id, :provider_role, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, plan); err != nil {
		return fmt.Errorf("failed to insert subscription plan: %w", err)
	}
	return nil
}

// GetPlanByID retrieves a subscription plan
func (r *UserRepo) GetPlanByID(ctx context.Context, id uuid.UUID) (*models.SubscriptionPlan, error) {
	query := `
		SELECT id, name, duration_months, price, customer_discount_percent,
			provider_id, provider_role, created_at
		FROM subscription_plans
		WHERE id = $1
	`

	var plan models.SubscriptionPlan
	err := r.db.GetContext(ctx, &plan, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("subscription plan %s", id)
		}
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}
	return &plan, nil
}

// ListPlans returns all subscription plans with provider names
func (r *UserRepo) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	query := `
		SELECT p.id, p.name, p.duration_months, p.price,
			p.customer_discount_percent, p.provider_id, p.provider_role,
			p.created_at
		FROM subscription_plans p
		ORDER BY p.created_at DESC
	`

	var plans []models.SubscriptionPlan
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}
	return plans, nil
}

// AssignPlan links a plan to a user with the computed expiry date
func (r *UserRepo) AssignPlan(ctx context.Context, userID, planID uuid.UUID, expiry time.Time) error {
	query := `
		UPDATE users
		SET subscription_plan_id = $2, subscription_expiry_date = $3,
			updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, userID, planID, expiry)
	if err != nil {
		return fmt.Errorf("failed to assign subscription plan: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("user %s", userID)
	}
	return nil
}
