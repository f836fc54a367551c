package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

func setupUserRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewUserRepo(&models.Config{}, db), mock
}

func TestConsumeReferralReward(t *testing.T) {
	userID := uuid.New()

	t.Run("clears an armed flag", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec(`UPDATE users\s+SET referral_reward_available = FALSE`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		consumed, err := repo.ConsumeReferralReward(context.Background(), userID)

		assert.NoError(t, err)
		assert.True(t, consumed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports false when flag already cleared", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec(`UPDATE users\s+SET referral_reward_available = FALSE`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		consumed, err := repo.ConsumeReferralReward(context.Background(), userID)

		assert.NoError(t, err)
		assert.False(t, consumed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRestoreReferralReward(t *testing.T) {
	repo, mock := setupUserRepo(t)
	userID := uuid.New()

	mock.ExpectExec(`UPDATE users\s+SET referral_reward_available = \$2`).
		WithArgs(userID, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RestoreReferralReward(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverSubscription(t *testing.T) {
	repo, mock := setupUserRepo(t)
	driverID := uuid.New()
	planID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"subscription_plan_id", "subscription_expiry_date", "customer_discount_percent",
	}).AddRow(planID, expiry, 15.0)

	mock.ExpectQuery(`SELECT u.subscription_plan_id, u.subscription_expiry_date`).
		WithArgs(driverID).
		WillReturnRows(rows)

	sub, err := repo.GetDriverSubscription(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, 15.0, sub.DiscountPercent)
	assert.True(t, sub.Active(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
