package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DipakAnap/cablink-backend/services/fleet FleetUC

// FleetUC represents the fleet usecase interface covering cars, scheduled
// routes and car expenses
type FleetUC interface {
	// cars
	CreateCar(ctx context.Context, car *models.Car) error
	GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	ListCars(ctx context.Context, status string, page, limit int) ([]models.Car, int, error)
	UpdateCar(ctx context.Context, car *models.Car) error
	DeleteCar(ctx context.Context, id uuid.UUID) error

	// routes
	CreateRoute(ctx context.Context, route *models.Route) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, int, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	// expenses
	AddExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context, carID uuid.UUID) ([]models.Expense, error)
}
