package settings

import (
	"context"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DipakAnap/cablink-backend/services/settings SettingsUC

// SettingsUC represents the system settings usecase interface
type SettingsUC interface {
	// GetSetting returns the raw string value for a key
	GetSetting(ctx context.Context, key string) (string, error)

	// GetPercentSetting parses a key as a percentage in [0,100];
	// an absent or unparsable value means the feature is off (0)
	GetPercentSetting(ctx context.Context, key string) (float64, error)

	ListSettings(ctx context.Context) ([]models.SystemSetting, error)
	UpdateSetting(ctx context.Context, key, value string) error
}
