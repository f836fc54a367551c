package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// FleetRepo implements the fleet repository interface
type FleetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFleetRepo creates a new fleet repository instance
func NewFleetRepo(cfg *models.Config, db *sqlx.DB) *FleetRepo {
	return &FleetRepo{
		cfg: cfg,
		db:  db,
	}
}
