package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/database"
)

func setupSettingsRepo(t *testing.T) (*SettingsRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache := database.NewRedisClientFromExisting(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	return NewSettingsRepo(db, cache), mock, mr
}

func TestGetSetting_CacheMiss(t *testing.T) {
	repo, mock, mr := setupSettingsRepo(t)

	mock.ExpectQuery(`SELECT value FROM system_settings WHERE key = \$1`).
		WithArgs("referral_discount_percent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("10"))

	value, err := repo.GetSetting(context.Background(), "referral_discount_percent")

	assert.NoError(t, err)
	assert.Equal(t, "10", value)
	assert.NoError(t, mock.ExpectationsWereMet())

	// the read populates the cache
	cached, err := mr.Get("settings:referral_discount_percent")
	assert.NoError(t, err)
	assert.Equal(t, "10", cached)
}

func TestGetSetting_CacheHitSkipsDatabase(t *testing.T) {
	repo, mock, mr := setupSettingsRepo(t)

	require.NoError(t, mr.Set("settings:email_enabled", "true"))

	value, err := repo.GetSetting(context.Background(), "email_enabled")

	assert.NoError(t, err)
	assert.Equal(t, "true", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSetting_NotFound(t *testing.T) {
	repo, mock, _ := setupSettingsRepo(t)

	mock.ExpectQuery(`SELECT value FROM system_settings WHERE key = \$1`).
		WithArgs("missing_key").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetSetting(context.Background(), "missing_key")

	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSettings(t *testing.T) {
	repo, mock, _ := setupSettingsRepo(t)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow("email_enabled", "true", time.Now()).
		AddRow("referral_discount_percent", "10", time.Now())

	mock.ExpectQuery(`SELECT key, value, updated_at FROM system_settings ORDER BY key`).
		WillReturnRows(rows)

	settings, err := repo.ListSettings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, settings, 2)
	assert.Equal(t, "email_enabled", settings[0].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSetting_InvalidatesCache(t *testing.T) {
	repo, mock, mr := setupSettingsRepo(t)

	require.NoError(t, mr.Set("settings:referral_discount_percent", "10"))

	mock.ExpectExec(`INSERT INTO system_settings`).
		WithArgs("referral_discount_percent", "15", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSetting(context.Background(), "referral_discount_percent", "15")

	assert.NoError(t, err)
	assert.False(t, mr.Exists("settings:referral_discount_percent"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
