package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// CreateRoute schedules a shared trip for a car
func (uc *FleetUC) CreateRoute(ctx context.Context, route *models.Route) error {
	if route.Price < 0 {
		return apperr.InvalidInputf("price must not be negative")
	}
	if route.SeatsOffered != nil && *route.SeatsOffered <= 0 {
		return apperr.InvalidInputf("seatsOffered must be positive")
	}

	// the car must exist and carry the capacity fallback
	car, err := uc.fleetRepo.GetCarByID(ctx, route.CarID)
	if err != nil {
		return err
	}
	if route.SeatsOffered != nil && *route.SeatsOffered > car.Capacity {
		return apperr.InvalidInputf("seatsOffered exceeds car capacity %d", car.Capacity)
	}

	return uc.fleetRepo.CreateRoute(ctx, route)
}

// GetRouteByID retrieves a route
func (uc *FleetUC) GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	return uc.fleetRepo.GetRouteByID(ctx, id)
}

// ListRoutes returns a page of routes with seat availability
func (uc *FleetUC) ListRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	return uc.fleetRepo.ListRoutes(ctx, filter)
}

// UpdateRoute rewrites a scheduled route
func (uc *FleetUC) UpdateRoute(ctx context.Context, route *models.Route) error {
	if route.Price < 0 {
		return apperr.InvalidInputf("price must not be negative")
	}

	existing, err := uc.fleetRepo.GetRouteByID(ctx, route.ID)
	if err != nil {
		return err
	}
	route.CarID = existing.CarID
	if route.Status == "" {
		route.Status = existing.Status
	}

	if route.SeatsOffered != nil {
		if *route.SeatsOffered <= 0 {
			return apperr.InvalidInputf("seatsOffered must be positive")
		}
		car, err := uc.fleetRepo.GetCarByID(ctx, route.CarID)
		if err != nil {
			return err
		}
		if *route.SeatsOffered > car.Capacity {
			return apperr.InvalidInputf("seatsOffered exceeds car capacity %d", car.Capacity)
		}
	}

	return uc.fleetRepo.UpdateRoute(ctx, route)
}

// DeleteRoute removes a route
func (uc *FleetUC) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return uc.fleetRepo.DeleteRoute(ctx, id)
}
