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

// CreateRoute inserts a new scheduled route
func (r *FleetRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	route.CreatedAt = time.Now()
	if route.Status == "" {
		route.Status = "Active"
	}

	query := `
		INSERT INTO routes (id, car_id, origin, destination, date, time,
			price, seats_offered, status, created_at
		) VALUES (:id, :car_id, :origin, :destination, :date, :time,
			:price, :seats_offered, :status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, route); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// GetRouteByID retrieves a route by ID
func (r *FleetRepo) GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	query := `
		SELECT id, car_id, origin, destination, date, time, price,
			seats_offered, status, created_at
		FROM routes
		WHERE id = $1
	`

	var route models.Route
	err := r.db.GetContext(ctx, &route, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("route %s", id)
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &route, nil
}

// ListRoutes returns a page of routes matching the filter, each annotated
// with its remaining seat availability
func (r *FleetRepo) ListRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, int, error) {
	where := `WHERE r.status <> 'Deleted'`
	args := []interface{}{}
	argn := 1

	if filter.Origin != "" {
		where += fmt.Sprintf(` AND r.origin ILIKE $%d`, argn)
		args = append(args, "%"+filter.Origin+"%")
		argn++
	}
	if filter.Destination != "" {
		where += fmt.Sprintf(` AND r.destination ILIKE $%d`, argn)
		args = append(args, "%"+filter.Destination+"%")
		argn++
	}
	if filter.Date != nil {
		where += fmt.Sprintf(` AND r.date = $%d`, argn)
		args = append(args, *filter.Date)
		argn++
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM routes r %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count routes: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT r.id, r.car_id, r.origin, r.destination, r.date, r.time,
			r.price, r.seats_offered, r.status, r.created_at,
			COALESCE(r.seats_offered, c.capacity)
				- COALESCE(b.seats_taken, 0) AS seats_available
		FROM routes r
		JOIN cars c ON c.id = r.car_id
		LEFT JOIN (
			SELECT route_id, SUM(seats_booked) AS seats_taken
			FROM bookings
			WHERE status <> 'Cancelled'
			GROUP BY route_id
		) b ON b.route_id = r.id
		%s
		ORDER BY r.date, r.time
		LIMIT %d OFFSET %d`, where, filter.Limit, offset)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list routes: %w", err)
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		var route models.Route
		var available int
		if err := rows.Scan(
			&route.ID, &route.CarID, &route.Origin, &route.Destination,
			&route.Date, &route.Time, &route.Price, &route.SeatsOffered,
			&route.Status, &route.CreatedAt, &available,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan route: %w", err)
		}
		route.SeatsAvailable = &available
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate routes: %w", err)
	}

	return routes, total, nil
}

// UpdateRoute rewrites a route's mutable fields
func (r *FleetRepo) UpdateRoute(ctx context.Context, route *models.Route) error {
	query := `
		UPDATE routes
		SET origin = :origin, destination = :destination, date = :date,
			time = :time, price = :price, seats_offered = :seats_offered,
			status = :status
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, route)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("route %s", route.ID)
	}
	return nil
}

// DeleteRoute removes a route
func (r *FleetRepo) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("route %s", id)
	}
	return nil
}

// SeatsBooked sums seats across a route's non-cancelled bookings
func (r *FleetRepo) SeatsBooked(ctx context.Context, routeID uuid.UUID) (int, error) {
	var taken int
	query := `
		SELECT COALESCE(SUM(seats_booked), 0)
		FROM bookings
		WHERE route_id = $1 AND status <> 'Cancelled'
	`
	if err := r.db.GetContext(ctx, &taken, query, routeID); err != nil {
		return 0, fmt.Errorf("failed to sum booked seats: %w", err)
	}
	return taken, nil
}
