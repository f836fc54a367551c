package usecase

import (
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/fleet"
)

// FleetUC implements the fleet usecase
type FleetUC struct {
	fleetRepo fleet.FleetRepo
	cfg       *models.Config
}

// NewFleetUC creates a new fleet usecase instance
func NewFleetUC(fleetRepo fleet.FleetRepo, cfg *models.Config) *FleetUC {
	return &FleetUC{
		fleetRepo: fleetRepo,
		cfg:       cfg,
	}
}
