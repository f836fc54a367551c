package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// CreateCar registers a vehicle
func (uc *FleetUC) CreateCar(ctx context.Context, car *models.Car) error {
	if car.CarNumber == "" {
		return apperr.InvalidInputf("carNumber is required")
	}
	if car.Capacity <= 0 {
		return apperr.InvalidInputf("capacity must be positive")
	}
	if car.PricePerKm < 0 {
		return apperr.InvalidInputf("pricePerKm must not be negative")
	}
	if car.MinKmPerDay != nil && *car.MinKmPerDay < 0 {
		return apperr.InvalidInputf("minKmPerDay must not be negative")
	}
	return uc.fleetRepo.CreateCar(ctx, car)
}

// GetCarByID retrieves a car
func (uc *FleetUC) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	return uc.fleetRepo.GetCarByID(ctx, id)
}

// ListCars returns a page of cars
func (uc *FleetUC) ListCars(ctx context.Context, status string, page, limit int) ([]models.Car, int, error) {
	return uc.fleetRepo.ListCars(ctx, status, page, limit)
}

// UpdateCar updates a car's fields
func (uc *FleetUC) UpdateCar(ctx context.Context, car *models.Car) error {
	if car.Capacity <= 0 {
		return apperr.InvalidInputf("capacity must be positive")
	}
	return uc.fleetRepo.UpdateCar(ctx, car)
}

// DeleteCar soft-deletes a car
func (uc *FleetUC) DeleteCar(ctx context.Context, id uuid.UUID) error {
	return uc.fleetRepo.MarkCarDeleted(ctx, id)
}
