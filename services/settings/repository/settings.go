package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/database"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

const settingCacheTTL = 5 * time.Minute

// SettingsRepo implements the settings repository interface backed by
// Postgres with a Redis read-through cache
type SettingsRepo struct {
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewSettingsRepo creates a new settings repository instance
func NewSettingsRepo(db *sqlx.DB, cache *database.RedisClient) *SettingsRepo {
	return &SettingsRepo{
		db:    db,
		cache: cache,
	}
}

func settingCacheKey(key string) string {
	return "settings:" + key
}

// GetSetting retrieves a setting value, serving from cache when possible
func (r *SettingsRepo) GetSetting(ctx context.Context, key string) (string, error) {
	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, settingCacheKey(key)); err == nil {
			return cached, nil
		}
	}

	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM system_settings WHERE key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.NotFoundf("setting %q", key)
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, settingCacheKey(key), value, settingCacheTTL); err != nil {
			// cache failures never fail the read
			_ = err
		}
	}

	return value, nil
}

// ListSettings returns all settings ordered by key
func (r *SettingsRepo) ListSettings(ctx context.Context) ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := r.db.SelectContext(ctx, &settings,
		`SELECT key, value, updated_at FROM system_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// UpsertSetting writes a setting and invalidates its cache entry
func (r *SettingsRepo) UpsertSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO system_settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, settingCacheKey(key)); err != nil {
			_ = err
		}
	}

	return nil
}
