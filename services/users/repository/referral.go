package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// ConsumeReferralReward clears the reward flag with a compare-and-clear:
// the UPDATE matches only while the flag is set, so of N concurrent
// consumers exactly one observes a row change.
func (r *UserRepo) ConsumeReferralReward(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE users
		SET referral_reward_available = FALSE, updated_at = NOW()
		WHERE id = $1 AND referral_reward_available = TRUE
	`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to consume referral reward: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// RestoreReferralReward re-arms the reward flag after a cancellation
func (r *UserRepo) RestoreReferralReward(ctx context.Context, userID uuid.UUID) error {
	return r.setRewardFlag(ctx, userID, true)
}

// GrantReferralReward arms the reward flag on a referrer
func (r *UserRepo) GrantReferralReward(ctx context.Context, userID uuid.UUID) error {
	return r.setRewardFlag(ctx, userID, true)
}

func (r *UserRepo) setRewardFlag(ctx context.Context, userID uuid.UUID, available bool) error {
	query := `
		UPDATE users
		SET referral_reward_available = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, userID, available)
	if err != nil {
		return fmt.Errorf("failed to set referral reward flag: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("user %s", userID)
	}
	return nil
}

// GetDriverSubscription returns the plan linkage and discount percentage for
// the user operating a car. A driver without a plan yields zeroed fields.
func (r *UserRepo) GetDriverSubscription(ctx context.Context, driverID uuid.UUID) (*models.DriverSubscription, error) {
	query := `
		SELECT u.subscription_plan_id, u.subscription_expiry_date,
			COALESCE(p.customer_discount_percent, 0) AS customer_discount_percent
		FROM users u
		LEFT JOIN subscription_plans p ON p.id = u.subscription_plan_id
		WHERE u.id = $1
	`

	var subscription models.DriverSubscription
	err := r.db.GetContext(ctx, &subscription, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("driver %s", driverID)
		}
		return nil, fmt.Errorf("failed to get driver subscription: %w", err)
	}
	return &subscription, nil
}
