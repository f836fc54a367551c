package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/DipakAnap/cablink-backend/services/fleet FleetRepo

// FleetRepo represents the fleet repository interface
type FleetRepo interface {
	CreateCar(ctx context.Context, car *models.Car) error
	GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	ListCars(ctx context.Context, status string, page, limit int) ([]models.Car, int, error)
	UpdateCar(ctx context.Context, car *models.Car) error
	MarkCarDeleted(ctx context.Context, id uuid.UUID) error

	CreateRoute(ctx context.Context, route *models.Route) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, int, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	// SeatsBooked sums seats across a route's non-cancelled bookings
	SeatsBooked(ctx context.Context, routeID uuid.UUID) (int, error)

	CreateExpense(ctx context.Context, expense *models.Expense) error
	ListExpensesByCar(ctx context.Context, carID uuid.UUID) ([]models.Expense, error)
}
