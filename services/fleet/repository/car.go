package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

const carColumns = `id, car_number, model, driver_id, capacity, price_per_km,
	min_km_per_day, image_url, status, created_at, updated_at`

// CreateCar inserts a new car
func (r *FleetRepo) CreateCar(ctx context.Context, car *models.Car) error {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now
	if car.Status == "" {
		car.Status = models.CarStatusPendingApproval
	}

	query := `
		INSERT INTO cars (id, car_number, model, driver_id, capacity,
			price_per_km, min_km_per_day, image_url, status,
			created_at, updated_at
		) VALUES (:id, :car_number, :model, :driver_id, :capacity,
			:price_per_km, :min_km_per_day, :image_url, :status,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, car); err != nil {
		return fmt.Errorf("failed to insert car: %w", err)
	}
	return nil
}

// GetCarByID retrieves a car by ID
func (r *FleetRepo) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE id = $1`, carColumns)

	var car models.Car
	err := r.db.GetContext(ctx, &car, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("car %s", id)
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return &car, nil
}

// ListCars returns a page of cars, optionally filtered by status. Deleted
// cars are excluded unless explicitly requested.
func (r *FleetRepo) ListCars(ctx context.Context, status string, page, limit int) ([]models.Car, int, error) {
	where := `WHERE status <> 'Deleted'`
	args := []interface{}{}
	if status != "" {
		where = `WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		fmt.Sprintf(`SELECT COUNT(*) FROM cars %s`, where), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s FROM cars %s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d`, carColumns, where, limit, offset)

	var cars []models.Car
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, total, nil
}

// UpdateCar updates a car's mutable fields
func (r *FleetRepo) UpdateCar(ctx context.Context, car *models.Car) error {
	car.UpdatedAt = time.Now()

	query := `
		UPDATE cars
		SET car_number = :car_number, model = :model, driver_id = :driver_id,
			capacity = :capacity, price_per_km = :price_per_km,
			min_km_per_day = :min_km_per_day, image_url = :image_url,
			status = :status, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, car)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("car %s", car.ID)
	}
	return nil
}

// MarkCarDeleted soft-deletes a car so historical bookings keep their reference
func (r *FleetRepo) MarkCarDeleted(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE cars SET status = 'Deleted', updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("car %s", id)
	}
	return nil
}
