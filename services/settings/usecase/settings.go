package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/settings"
)

// SettingsUC implements the settings usecase
type SettingsUC struct {
	settingsRepo settings.SettingsRepo
}

// NewSettingsUC creates a new settings usecase instance
func NewSettingsUC(settingsRepo settings.SettingsRepo) *SettingsUC {
	return &SettingsUC{
		settingsRepo: settingsRepo,
	}
}

// GetSetting returns the raw value for a key
func (uc *SettingsUC) GetSetting(ctx context.Context, key string) (string, error) {
	return uc.settingsRepo.GetSetting(ctx, key)
}

// GetPercentSetting parses a setting as a percentage. An absent key or an
// unparsable value disables the feature and yields 0.
func (uc *SettingsUC) GetPercentSetting(ctx context.Context, key string) (float64, error) {
	raw, err := uc.settingsRepo.GetSetting(ctx, key)
	if err != nil {
		if apperr.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}

	percent, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logger.Warn("Ignoring unparsable percent setting",
			logger.String("key", key),
			logger.String("value", raw),
		)
		return 0, nil
	}

	if percent < 0 {
		return 0, nil
	}
	if percent > 100 {
		return 100, nil
	}
	return percent, nil
}

// ListSettings returns all settings
func (uc *SettingsUC) ListSettings(ctx context.Context) ([]models.SystemSetting, error) {
	return uc.settingsRepo.ListSettings(ctx)
}

// UpdateSetting writes a setting value
func (uc *SettingsUC) UpdateSetting(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return apperr.InvalidInputf("setting key is required")
	}
	return uc.settingsRepo.UpsertSetting(ctx, key, value)
}
