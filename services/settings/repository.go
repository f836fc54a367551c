package settings

import (
	"context"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DipakAnap/cablink-backend/services/settings SettingsRepo

// SettingsRepo represents the system settings repository interface
type SettingsRepo interface {
	GetSetting(ctx context.Context, key string) (string, error)
	ListSettings(ctx context.Context) ([]models.SystemSetting, error)
	UpsertSetting(ctx context.Context, key, value string) error
}
